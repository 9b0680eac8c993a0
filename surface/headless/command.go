// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"github.com/gogpu/chart"
	"github.com/gogpu/chart/surface"
)

// CommandType identifies the type of a recorded command.
type CommandType uint8

const (
	CmdBegin      CommandType = iota // Reset the scene
	CmdDrawPath                      // Add a path element
	CmdUpdatePath                    // Replace path data
	CmdDrawRect                      // Add a rectangle element
	CmdUpdateRect                    // Move or resize a rectangle
	CmdSetClip                       // Set the scene clip
	CmdClearClip                     // Remove the scene clip
	CmdEnd                           // Present a frame
)

var commandTypeNames = [...]string{
	CmdBegin:      "Begin",
	CmdDrawPath:   "DrawPath",
	CmdUpdatePath: "UpdatePath",
	CmdDrawRect:   "DrawRect",
	CmdUpdateRect: "UpdateRect",
	CmdSetClip:    "SetClip",
	CmdClearClip:  "ClearClip",
	CmdEnd:        "End",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded surface call.
type Command interface {
	Type() CommandType
}

// BeginCommand records Begin.
type BeginCommand struct {
	Width, Height float64
}

// Type implements Command.
func (BeginCommand) Type() CommandType { return CmdBegin }

// DrawPathCommand records DrawPath.
type DrawPathCommand struct {
	ID    string
	Path  *chart.Path
	Style surface.Style
}

// Type implements Command.
func (DrawPathCommand) Type() CommandType { return CmdDrawPath }

// UpdatePathCommand records UpdatePath.
type UpdatePathCommand struct {
	ID   string
	Path *chart.Path
}

// Type implements Command.
func (UpdatePathCommand) Type() CommandType { return CmdUpdatePath }

// DrawRectCommand records DrawRect.
type DrawRectCommand struct {
	ID     string
	Rect   chart.Rect
	Radius float64
	Style  surface.Style
}

// Type implements Command.
func (DrawRectCommand) Type() CommandType { return CmdDrawRect }

// UpdateRectCommand records UpdateRectGeometry.
type UpdateRectCommand struct {
	ID   string
	Rect chart.Rect
}

// Type implements Command.
func (UpdateRectCommand) Type() CommandType { return CmdUpdateRect }

// SetClipCommand records SetClip.
type SetClipCommand struct {
	Path *chart.Path
}

// Type implements Command.
func (SetClipCommand) Type() CommandType { return CmdSetClip }

// ClearClipCommand records ClearClip.
type ClearClipCommand struct{}

// Type implements Command.
func (ClearClipCommand) Type() CommandType { return CmdClearClip }

// EndCommand records End.
type EndCommand struct{}

// Type implements Command.
func (EndCommand) Type() CommandType { return CmdEnd }
