// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	copy key.Binding
	quit key.Binding
}

var keys = keyMap{
	copy: key.NewBinding(key.WithKeys("c")),
	quit: key.NewBinding(key.WithKeys("q", "ctrl+c", "esc")),
}
