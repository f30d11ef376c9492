/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"paranoid/internal/colorconv"

	"github.com/chzyer/readline"
)

const prompt_help = `  linear R G B [scale]  encoded -> linear (scale: none, 255, 1024, 255+1024, 1024-independent)
  encode R G B          linear (0-255) -> encoded
  lab R G B             encoded -> CIE L*a*b*
  help                  this text
  quit                  exit`

func runPrompt(def colorconv.Scaling) error {
	home, _ := os.UserHomeDir()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "color> ",
		HistoryFile: filepath.Join(home, ".color_convert_history"),
		AutoComplete: newCompleter(),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Printf("%s version %d.%d (interactive)\n", app_name, version_major, version_minor)
	fmt.Println(`Type "help" for commands`)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		out, quit := evalLine(strings.TrimSpace(line), def)
		if quit {
			return nil
		}
		if out != "" {
			fmt.Println(out)
		}
	}
}

func newCompleter() *readline.PrefixCompleter {
	var scales []readline.PrefixCompleterInterface
	for _, name := range scaleNames {
		scales = append(scales, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("linear", scales...),
		readline.PcItem("encode"),
		readline.PcItem("lab"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// evalLine runs one prompt command and returns the text to print.
func evalLine(line string, def colorconv.Scaling) (string, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit", "q":
		return "", true
	case "help", "?":
		return prompt_help, false
	}

	if len(fields) < 4 {
		return "ERR ARG", false
	}
	c, err := parseColor(fields[1:4])
	if err != nil {
		return "ERR " + err.Error(), false
	}

	switch strings.ToLower(fields[0]) {
	case "linear":
		s := def
		if len(fields) > 4 {
			if s, err = parseScaling(fields[4]); err != nil {
				return "ERR " + err.Error(), false
			}
		}
		return colorconv.EncodeToLinear(c, s).String(), false
	case "encode":
		return colorconv.LinearToEncode(c).String(), false
	case "lab":
		u, err := colorconv.LabSpace{}.ToUniform(c)
		if err != nil {
			return "ERR " + err.Error(), false
		}
		return fmt.Sprintf("L=%.4f a=%.4f b=%.4f", u[0], u[1], u[2]), false
	}
	return "ERR UNKNOWN", false
}

func parseColor(fields []string) (colorconv.Color, error) {
	var v [3]float64
	for i, f := range fields {
		x, err := strconv.ParseFloat(strings.Trim(f, "(),"), 64)
		if err != nil {
			return colorconv.Color{}, fmt.Errorf("bad component %q", f)
		}
		v[i] = x
	}
	return colorconv.Color{R: v[0], G: v[1], B: v[2]}, nil
}
