package view

import "image/color"

var (
	ColBackground = color.RGBA{0x09, 0x07, 0x07, 0xff}
	ColGrid       = color.RGBA{0x30, 0xa9, 0xde, 0xff}
	ColHighlight  = color.RGBA{0xe5, 0x3a, 0x40, 0xff}
	ColControl    = color.RGBA{0xef, 0xdc, 0x05, 0xff}
)

const (
	sizeLabel = 12
	sizeValue = 48
	sizeTitle = 72

	title  = "//process-p"
	credit = "a drum computer by stephen ball, august 2017"
)
