package main

import (
	"github.com/docmark/docmark/internal/markerlint"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(markerlint.Analyzer)
}
