package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

type statusKind int

const (
	statusOK statusKind = iota
	statusWarn
	statusFail
)

func (k statusKind) marker() string {
	switch k {
	case statusWarn:
		return "[!]"
	case statusFail:
		return "[-]"
	default:
		return "[*]"
	}
}

func (k statusKind) color() string {
	switch k {
	case statusWarn:
		return ansiYellow
	case statusFail:
		return ansiRed
	default:
		return ansiBlue
	}
}

func printStatus(w io.Writer, kind statusKind, message string) {
	marker := kind.marker()
	if shouldColorize(w) {
		marker = kind.color() + marker + ansiReset
	}
	fmt.Fprintf(w, "%s %s\n", marker, message)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
