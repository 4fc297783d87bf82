package ui

// Package ui contains the Fyne-based desktop user interface for the
// application. It wires user interactions to the install service and renders
// the game directory selection, installed mods, install progress, and the
// debug console. All UI strings are localized via Localization.
