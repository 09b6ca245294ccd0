package main

import "regexp"

var msvcVersionRegex = regexp.MustCompile(`Version (\d+\.\d+\.\d+)`)
