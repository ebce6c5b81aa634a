// Example opens a window and draws a single triangle with the shader pair
// in this directory until the window is closed or Escape is pressed.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	cd example && go run .    # shader paths are relative to the working directory
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := triangle.DefaultConfig()

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Destroy()

	dev := window.Device()

	scene, err := triangle.Setup(dev, cfg)
	if err != nil {
		return err
	}
	defer scene.Release()

	triangle.Run(window, dev, scene, cfg.ClearColor)
	return nil
}
