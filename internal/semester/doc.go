// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Craft - Craft is a helper toolkit for the markdown-command plugin ecosystem of AI coding assistants.
It ships the teaching commands' calendar engine, configuration loader, and report renderers.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package semester computes semester progress from a teaching calendar.
//
// All functions are pure: they depend only on their arguments (and, for
// CalculateOn with an empty query, on today's date). Dates are handled as
// calendar days at UTC midnight; any time-of-day component is discarded.
//
// A "week" is seven non-break days counted from the semester start, so once a
// break has occurred weeks no longer line up with fixed calendar positions.
package semester
