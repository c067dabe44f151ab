// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	nextTab key.Binding
	prevTab key.Binding
	enter   key.Binding
	esc     key.Binding
	quit    key.Binding
	logout  key.Binding
	sync    key.Binding
	status  key.Binding
	like    key.Binding
	unlike  key.Binding
	play    key.Binding
	newItem key.Binding
	delete  key.Binding
	copy    key.Binding
	reload  key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	nextTab: key.NewBinding(key.WithKeys("tab", "right")),
	prevTab: key.NewBinding(key.WithKeys("shift+tab", "left")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("L")),
	sync:    key.NewBinding(key.WithKeys("s")),
	status:  key.NewBinding(key.WithKeys("i")),
	like:    key.NewBinding(key.WithKeys("f")),
	unlike:  key.NewBinding(key.WithKeys("u")),
	play:    key.NewBinding(key.WithKeys("p")),
	newItem: key.NewBinding(key.WithKeys("n")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	reload:  key.NewBinding(key.WithKeys("r")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
