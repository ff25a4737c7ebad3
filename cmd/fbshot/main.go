package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/yf-ft/fbshot"
)

func main() {
	name := flag.String("name", "screenshot", "base name for the screenshot file")
	dir := flag.String("dir", "", "directory to save the screenshot (default: current directory)")
	noDate := flag.Bool("no-date", false, "do not include the date in the filename")
	device := flag.String("device", fbshot.DefaultDevice, "framebuffer device to capture")
	flag.Parse()

	res, err := fbshot.Capture(func(o *fbshot.CaptureOptions) {
		o.BaseName = *name
		o.Dir = *dir
		o.NoDate = *noDate
		o.Device = *device
	})
	if err != nil {
		fail(err)
	}

	fmt.Println("Screenshot saved as", res.Path)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
