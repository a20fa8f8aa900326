// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func (a *app) run() error {
	in, err := os.Open(a.file)
	if err != nil {
		return err
	}
	defer in.Close()

	if a.count {
		n, err := filterLines(io.Discard, in, a.grep, a.ignoreCase, a.lines)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "%s: %d\n", a.file, n)
		return nil
	}

	if a.toStdout || a.output == "" {
		_, err := filterLines(a.stdout, in, a.grep, a.ignoreCase, a.lines)
		return err
	}

	path := a.output
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cwd, path)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	n, err := filterLines(out, in, a.grep, a.ignoreCase, a.lines)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	a.logger.Debug("wrote matches", "path", path, "lines", n)
	return nil
}

// filterLines copies the lines of r that contain any of patterns to w and
// returns how many it wrote. No patterns matches every line. A limit of 0
// means no limit.
func filterLines(w io.Writer, r io.Reader, patterns []string, ignoreCase bool, limit int) (int, error) {
	if ignoreCase {
		lowered := make([]string, len(patterns))
		for i, p := range patterns {
			lowered[i] = strings.ToLower(p)
		}
		patterns = lowered
	}

	bw := bufio.NewWriter(w)
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		if limit > 0 && n >= limit {
			break
		}
		line := sc.Text()
		if !matchLine(line, patterns, ignoreCase) {
			continue
		}
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return n, err
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	return n, bw.Flush()
}

func matchLine(line string, patterns []string, ignoreCase bool) bool {
	if len(patterns) == 0 {
		return true
	}
	if ignoreCase {
		line = strings.ToLower(line)
	}
	for _, p := range patterns {
		if strings.Contains(line, p) {
			return true
		}
	}
	return false
}
