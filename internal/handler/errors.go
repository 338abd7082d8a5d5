// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated is returned by NewHandlers when the server
// configuration has no local API address. The replica is useless without
// its API, so this fails startup.
var errNoHandlersAreCreated = errors.New("no handlers are created")
