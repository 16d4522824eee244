// Package plexus draws an interactive particle network for [Ebitengine]
// backgrounds: a field of slowly resting dots that shy away from the pointer
// and spring back, joined by lines that fade with distance.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	d := plexus.New(plexus.DefaultFieldConfig())
//	plexus.Run(d, plexus.RunConfig{
//		Title: "Network", Width: 1280, Height: 720, Resizable: true,
//	})
//
// # Model
//
// A [Field] owns the particles. [Field.Init] spawns one particle per
// [FieldConfig.AreaPerParticle] units² of the viewport at random rest
// positions, and [Field.Step] renders one frame onto a [Surface]: clear,
// draw then update each particle, then connect every pair closer than
// [FieldConfig.ConnectDistance].
//
// A [Particle] inside the pointer's influence radius is pushed along the
// pointer-to-particle vector, scaled by how close the pointer is and by the
// particle's density. Outside it, the particle recovers a tenth of its offset
// from its origin per frame. Until the pointer source reports once, particles
// hold still.
//
// The [PointerTracker] holds the last reported position. The [Driver] ties a
// field, a tracker and a [Viewport] together: Start builds the first field,
// Frame steps it, and Resize rebuilds it from the viewport's current size.
//
// # Backends
//
// Three [Surface] implementations ship with the package: the Ebitengine
// window driven by [Run], the headless [RasterSurface] for offline rendering
// and screenshots, and a braille terminal renderer in plexus/term. Field
// lifecycle events can be mirrored into a [Donburi] world via plexus/ecs.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package plexus
