// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// GetTexLabel returns a TeX label of key with an optional unit
func GetTexLabel(key, unit string) string {
	l := "$"
	switch key {
	case "t", "time":
		l += "t"
	case "target":
		l += "\\sigma_{target}"
	case "reaction":
		l += "\\sigma_{zz}"
	case "velocity":
		l += "v_z"
	case "stiffness":
		l += "K"
	case "strain":
		l += "\\varepsilon_{zz}"
	case "x":
		l += "x"
	case "y":
		l += "y"
	case "z":
		l += "z"
	case "sx":
		l += "\\sigma_x"
	case "sy":
		l += "\\sigma_y"
	case "sz":
		l += "\\sigma_z"
	case "sxy":
		l += "\\sigma_{xy}"
	case "syz":
		l += "\\sigma_{yz}"
	case "szx":
		l += "\\sigma_{zx}"
	case "":
		return ""
	default:
		l += key
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}
