// robotomonojp - build tools for the RobotoMonoJP font family
// Copyright (C) 2026  Junya Morioka <mjun@mjunya.com>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mjunya/robotomonojp/pipeline"
	"github.com/mjunya/robotomonojp/tools/internal/buildinfo"
	"github.com/mjunya/robotomonojp/tools/internal/fontcli"
	"github.com/mjunya/robotomonojp/tools/internal/profile"
)

var (
	config     fontcli.Config
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	config.Register(flag.CommandLine, pipeline.Standard)
	flag.Usage = fontcli.Usage(flag.CommandLine, "robotomonojp",
		"build the RobotoMonoJP font", buildinfo.Short("robotomonojp"))
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	fontcli.SetupOutput(config.Verbose)
	pipeline.Generator = buildinfo.Short("robotomonojp")
	return fontcli.Run(pipeline.Standard, &config)
}
