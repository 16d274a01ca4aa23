// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package build

import (
	"fmt"
	"os"
)

// Environment contains metadata provided by the build environment.
type Environment struct {
	Commit string // git commit hash
	Date   string // commit date in YYYYMMDD format
	Branch string
	Tag    string
}

func (env Environment) String() string {
	return fmt.Sprintf("commit:%s date:%s branch:%s tag:%s",
		env.Commit, env.Date, env.Branch, env.Tag)
}

// Env returns metadata about the current build environment, read from
// the local git repository.
func Env() *Environment {
	env := &Environment{}
	if _, err := os.Stat(".git"); err != nil {
		return env
	}
	if commit := readGitFile("HEAD"); commit != "" {
		env.Commit = RunGit("rev-parse", "HEAD")
		env.Date = RunGit("log", "-1", "--format=%cd", "--date=format:%Y%m%d")
	}
	env.Branch = RunGit("rev-parse", "--abbrev-ref", "HEAD")
	env.Tag = RunGit("tag", "-l", "--points-at", "HEAD")
	return env
}
