/*
Package triangle draws a single triangle with a vertex/fragment shader pair.

# Overview

The program runs three stages in order:

  - Context setup: a window with a current OpenGL 3.3 core context is
    created by the backend/opengl package.
  - Shader pipeline: two shader source files are read, compiled and linked
    into one program (BuildProgram). Compile and link diagnostics are
    reported through *ShaderError, truncated to InfoLogSize bytes.
  - Render loop: every frame clears the framebuffer, draws the triangle,
    handles Escape, polls events and swaps buffers (Run).

The package talks to the GPU only through Device and to the platform only
through Window, so every stage can be exercised without a display.

# Quick Start

	window, err := opengl.NewWindow(cfg)
	if err != nil {
	    return err
	}
	defer window.Destroy()

	scene, err := triangle.Setup(window.Device(), cfg)
	if err != nil {
	    return err
	}
	defer scene.Release()

	triangle.Run(window, window.Device(), scene, cfg.ClearColor)

# Object Lifetimes

Shader objects are deleted as soon as the link attempt finishes. The
program, vertex array and vertex buffer belong to the Scene and are
deleted exactly once by Scene.Release. A failing Setup leaves no GPU
object behind.
*/
package triangle
