// Package stringx provides small string helpers shared by the mLaunch packages.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, defaults, case-insensitive set membership and
//              rune-safe truncation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-11-02
package stringx
