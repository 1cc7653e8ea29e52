package main

import "github.com/rios0rios0/cmistools/internal"

func main() {
	internal.Main("download")
}
