// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"strings"
)

// Window is a window with a current GL context, as used by [Loop].
type Window interface {
	// ShouldClose returns the close flag, which is set by
	// [Window.SetShouldClose] or by the window system.
	ShouldClose() bool
	SetShouldClose(v bool)

	// KeyPressed returns whether the key is currently held down.
	KeyPressed(key Keys) bool
	SwapBuffers()
	PollEvents()

	// Time returns the seconds elapsed since the window system
	// was initialized.
	Time() float64
	FramebufferSize() (width, height int)
}

// Keys are the keyboard keys that can be configured as the close key.
type Keys int32

const (
	KeyNone Keys = iota
	KeyEscape
	KeyQ
	KeySpace
	KeyEnter
)

var keyNames = map[Keys]string{
	KeyNone:   "none",
	KeyEscape: "escape",
	KeyQ:      "q",
	KeySpace:  "space",
	KeyEnter:  "enter",
}

func (k Keys) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Keys(%d)", int32(k))
}

// ParseKey returns the key with the given case-insensitive name.
// "esc" is accepted for escape, and an empty name is [KeyNone].
func ParseKey(name string) (Keys, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return KeyNone, nil
	case "esc":
		return KeyEscape, nil
	}
	for k, s := range keyNames {
		if s == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("gpu: unknown key %q", name)
}
