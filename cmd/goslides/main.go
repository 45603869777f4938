/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"log/slog"
	"os"

	"goslides/internal/crash"
	applog "goslides/internal/log"
	"goslides/internal/ui"
	"goslides/internal/version"
)

func usage() {
	fmt.Println("Simple Slide Editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  goslides                         Launch the editor window (build with -tags fyne)")
	fmt.Println("  goslides version|-v|--version    Show version")
	fmt.Println("  goslides help|-h|--help          Show this help")
}

func main() {
	// initialize structured logging using environment defaults; the UI re-initializes from config
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	defer crash.Recover(nil)

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Simple Slide Editor")
			fmt.Println(version.String())
			return
		case "help", "--help", "-h":
			usage()
			return
		default:
			fmt.Println("Unknown argument:", args[1])
			usage()
			os.Exit(2)
		}
	}

	if err := ui.Run(); err != nil {
		l.Error("ui failed", slog.Any("err", err))
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
