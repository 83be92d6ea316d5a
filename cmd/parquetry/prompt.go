package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// promptDirectory asks for an input directory on stdin. Stands in for the
// directory-picker dialog some platforms offer; the core only ever sees
// the resolved path.
func promptDirectory() string {
	fmt.Print("Input directory: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

// confirmDelete asks before removing source files.
func confirmDelete(n int) bool {
	fmt.Printf("Delete %d original file(s)? [y/N]: ", n)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
