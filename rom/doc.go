// Package rom writes program and ROM images in the formats loaded by the
// Logisim SAP2 circuit: a flat binary, "v2.0 raw" hex, and
// "v3.0 hex words addressed" hex.
package rom
