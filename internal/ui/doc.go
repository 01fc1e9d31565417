// Package ui provides the user interface components for the murmur TUI.
//
// # Overview
//
// The ui package implements the visual components of murmur using the Bubble Tea
// framework and Lipgloss styling library. Components hold only presentation
// state; the conversation data lives in package state and is pushed in by
// the app on every change.
//
// # Layout System
//
//	┌──────────────────────────────────────────────────────────┐
//	│ Header (1 line)                                          │
//	├─────────────┬──────────────────────────────┬─────────────┤
//	│  Chat list  │  Thread                      │  Contacts   │
//	│  (1/4)      │  messages + composer         │  (fixed)    │
//	├─────────────┴──────────────────────────────┴─────────────┤
//	│ Footer (1 line)                                          │
//	└──────────────────────────────────────────────────────────┘
//
// In fullscreen the chat list and contacts collapse and the thread takes the
// whole width.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Title, signed-in user and presence on a gradient.
//
// Footer: Context-aware key bindings plus a transient flash line.
//
// Sidebar: Chat list with search, stories strip and unread badges.
//
// Chat: The thread viewport, composer textarea and emoji picker overlay.
//
// Contacts: Everyone reachable, with presence and an ADMIN badge.
//
// AuthScreen: The sign-in / sign-up card.
//
// Modal: Container for the modals package (profile, admin, theme, help).
package ui
