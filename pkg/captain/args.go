// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package captain

import "strings"

// Categorization is argv split into positionals and flag tokens. Flag tokens
// are stored without their prefix. Only positionals keep a meaningful order.
type Categorization struct {
	Positionals []string
	Long        []string
	Short       []string
}

// Categorize splits args (argv without the program name) into long flags
// ("--name"), short flags ("-abc" gives "a", "b" and "c") and positionals.
// The bare tokens "-" and "--" are rejected with a *MalformedFlagError.
func Categorize(args []string) (Categorization, error) {
	c := Categorization{Positionals: []string{}}
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "--"):
			name := arg[2:]
			if name == "" {
				return Categorization{}, &MalformedFlagError{Token: arg}
			}
			c.Long = append(c.Long, name)
		case strings.HasPrefix(arg, "-"):
			chars := arg[1:]
			if chars == "" {
				return Categorization{}, &MalformedFlagError{Token: arg}
			}
			for _, r := range chars {
				c.Short = append(c.Short, string(r))
			}
		default:
			c.Positionals = append(c.Positionals, arg)
		}
	}
	return c, nil
}
