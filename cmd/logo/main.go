package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"notecal/render"
)

func main() {
	size := flag.Int("size", 256, "Icon size in pixels.")
	out := flag.String("out", filepath.Join("assets", "calendar_logo.png"), "Output PNG path.")
	flag.Parse()

	weekday := (int(time.Now().UTC().Weekday()) + 6) % 7

	if err := os.MkdirAll(filepath.Dir(*out), 0o755); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := render.IconPNG(f, *size, weekday); err != nil {
		log.Fatal(err)
	}
}
