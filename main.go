package main

import (
	"github.com/bnema/hostpage/internal/adapters/in/cli"
	buildinfo "github.com/bnema/hostpage/pkg/version"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	buildinfo.Set(version, commit, date)
	cli.Execute()
}
