// Package radiogaga provides an interactive terminal radio player.
// It builds a catalog of station names mapped to stream URLs by scraping a
// hyperlink list, lets the user search that catalog with fuzzy completion,
// and hands the selected stream to an external media player.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readline/, sqlite/).
package radiogaga
