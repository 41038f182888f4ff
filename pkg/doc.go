// Package pkg provides the core libraries for the gridboard layout engine.
//
// # Overview
//
// Gridboard lays dashboard components out on an adaptive column grid. The
// pkg directory is organized into four main areas:
//
//  1. [component], [grid] - Domain logic (data model, breakpoints, geometry,
//     collision resolution, the optimizer)
//  2. [template], [document] - Layout sources (starter templates,
//     export/import with round-trip fidelity)
//  3. [controller], [prefs] - Session state (customization gestures,
//     debounced persistence, store backends)
//  4. [render], [observability], [retry], [config] - Supporting
//     infrastructure
//
// # Architecture
//
// The typical data flow through gridboard:
//
//	Template or imported document
//	         ↓
//	    [template] / [document] (instantiate with fresh ids)
//	         ↓
//	    [grid] (resolve breakpoint, flow, resolve collisions)
//	         ↓
//	    [controller] (gestures, dirty tracking, autosave)
//	         ↓
//	    [prefs] (file, memory, redis, or mongo store)
//
// # Quick Start
//
// Instantiate a template and lay it out for a container width:
//
//	import (
//	    "github.com/gridboard/gridboard/pkg/grid"
//	    "github.com/gridboard/gridboard/pkg/template"
//	)
//
//	components, _ := template.Builtin().Instantiate(template.NameDefault)
//	placed, residual := grid.Apply(components, 1280, grid.Config{MinItemWidth: 200})
//
// Drive a customization session with autosave:
//
//	ctrl := controller.New(store, "user-1", controller.Options{ContainerWidth: 1280})
//	_ = ctrl.Load(ctx)
//	ctrl.StartCustomizing()
//	_ = ctrl.Move(id, component.Position{X: 24, Y: 240}, size)
//	// edits autosave after a quiet second
package pkg
