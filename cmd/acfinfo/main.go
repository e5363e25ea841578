package main

import (
	"fmt"
	"os"

	"github.com/adeline-acf/acf-video-tool/acf"
)

func main() {
	filename := os.Args[1]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Printf("Could not read file '%s': %v\n", filename, err)
		os.Exit(1)
	}

	parser := acf.NewParser(data)
	frameCount, err := parser.Run(nil)
	if err != nil {
		fmt.Printf("Could not parse file: %v\n", err)
		os.Exit(1)
	}

	format := parser.Format()
	fmt.Printf("Width x Height: %d x %d\n", format.Width, format.Height)
	fmt.Printf("Tiles per frame: %d\n", format.TileCount())
	fmt.Printf("Compressor: %d\n", format.Compressor)
	fmt.Printf("Play rate: %d\n", format.PlayRate)
	fmt.Printf("Frames decoded: %d\n", frameCount)
}
