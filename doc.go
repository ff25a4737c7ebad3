// Package fbshot captures still images from the TXT 4.0 display framebuffer
// and saves them as PNG files.
//
// The display is a fixed 240x320 RGB565 panel exposed as a byte stream at
// /dev/fb0. A capture reads one full frame in a single exact-count read,
// expands each pixel to 8-bit-per-channel RGB with a linear rescale, and
// streams the result into a non-interlaced truecolor PNG one scanline at a
// time.
package fbshot
