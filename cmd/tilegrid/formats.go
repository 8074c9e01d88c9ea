package main

import "strings"

func deduceFormat(format, filePath string) string {
	if format == "" && strings.HasSuffix(filePath, ".index") {
		return "index"
	}
	if format == "" && (strings.HasSuffix(filePath, ".db") || strings.HasSuffix(filePath, ".sqlite")) {
		return "sqlite"
	}
	return format
}
