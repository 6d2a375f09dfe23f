// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strconv"
	"strings"
)

// resolveFactPath checks a manifest fact path against the will. A path is a
// root name with an optional bracketed selector and an optional field
// suffix: "testator.nric", "witnesses[1]", "assets[prop-1].property".
// Integrity here means the cited entity exists; field suffixes under an
// existing entity are accepted as-is.
func resolveFactPath(w *WillData, path string) bool {
	if path == "" {
		return false
	}
	head := path
	if i := strings.IndexByte(path, '.'); i >= 0 {
		head = path[:i]
	}

	root, selector, hasSelector := splitSelector(head)
	switch root {
	case "testator":
		return !hasSelector
	case "special_instructions":
		return !hasSelector && w.SpecialInstructions != ""
	case "revokes_prior":
		return !hasSelector
	case "executors":
		return selectParty(w.Executors, selector, hasSelector)
	case "witnesses":
		return selectParty(w.Witnesses, selector, hasSelector)
	case "beneficiaries":
		return selectParty(w.Beneficiaries, selector, hasSelector)
	case "guardians":
		return selectParty(w.Guardians, selector, hasSelector)
	case "assets":
		if !hasSelector {
			return len(w.Assets) > 0
		}
		if n, err := strconv.Atoi(selector); err == nil {
			return n >= 0 && n < len(w.Assets)
		}
		_, ok := w.AssetByID(selector)
		return ok
	case "bequests":
		if !hasSelector {
			return len(w.Bequests) > 0
		}
		n, err := strconv.Atoi(selector)
		return err == nil && n >= 0 && n < len(w.Bequests)
	}
	return false
}

// splitSelector splits "witnesses[1]" into ("witnesses", "1", true).
func splitSelector(head string) (root, selector string, ok bool) {
	open := strings.IndexByte(head, '[')
	if open < 0 {
		return head, "", false
	}
	if !strings.HasSuffix(head, "]") {
		return head, "", false
	}
	return head[:open], head[open+1 : len(head)-1], true
}

// selectParty resolves an index or NRIC selector against a party slice.
func selectParty(parties []Party, selector string, hasSelector bool) bool {
	if !hasSelector {
		return len(parties) > 0
	}
	if n, err := strconv.Atoi(selector); err == nil {
		return n >= 0 && n < len(parties)
	}
	id := NormalizeNRIC(selector)
	for _, p := range parties {
		if p.ID() == id {
			return true
		}
	}
	return false
}
