// Package windowbirds renders an animated window scene on [Ebitengine].
//
// Birds fly past a painted window on real clock ticks: a light, fast bird
// for every change of the second and a dark, slow bird for every change of
// the minute. The sky is day or night by the wall-clock hour, and a sun or
// moon crosses the window as the day goes by.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene := windowbirds.NewScene(windowbirds.SceneConfig{})
//	windowbirds.Run(scene, windowbirds.RunConfig{Title: "Birds"})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Frame loop
//
// Each [Scene.Update] samples the [Clock], spawns birds on second and
// minute ticks, advances every bird, and prunes birds past the right edge
// of the window. Each [Scene.Draw] emits [RenderCommand] values in strict
// back-to-front order (canvas, sky, sun or moon, birds, window frame,
// curtains) and paints them with the ebiten vector package.
//
// # Headless use
//
// Tests and tools can drive a scene with a [FixedClock] and a seeded
// random source, call [Scene.Step] and [Scene.Render], and inspect the
// command list. [Scene.WriteSVG] exports the frame as SVG.
//
// [Ebitengine]: https://ebitengine.org
package windowbirds
