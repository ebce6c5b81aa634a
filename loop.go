package triangle

// ProcessInput requests the window to close when Escape is held.
func ProcessInput(win Window) {
	if win.KeyPressed(KeyEscape) {
		win.SetShouldClose(true)
	}
}

// Run renders the scene until the window is asked to close and returns the
// number of frames drawn. Draw errors are not checked.
func Run(win Window, dev Device, scene *Scene, clearColor Color) int {
	frames := 0
	for !win.ShouldClose() {
		dev.Clear(clearColor)

		dev.UseProgram(uint32(scene.program))
		dev.BindVertexArray(scene.mesh.vao)
		dev.DrawTriangles(0, scene.mesh.count)

		ProcessInput(win)
		win.PollEvents()
		win.SwapBuffers()
		frames++
	}

	if verbose() {
		logger.Debug("render loop finished", "frames", frames)
	}
	return frames
}
