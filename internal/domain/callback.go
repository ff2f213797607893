package domain

import (
	"fmt"
	"strings"
)

// CallbackKind identifies the action encoded in a callback token
type CallbackKind string

const (
	CallbackSource           CallbackKind = "src"
	CallbackMediumGroup      CallbackKind = "medgrp"
	CallbackMedium           CallbackKind = "med"
	CallbackCampaignGroup    CallbackKind = "campgrp"
	CallbackCampaign         CallbackKind = "camp"
	CallbackDateChoice       CallbackKind = "adddate"
	CallbackBack             CallbackKind = "back"
	CallbackAddCategory      CallbackKind = "add_category"
	CallbackViewCategory     CallbackKind = "view_category"
	CallbackDeleteItem       CallbackKind = "delete_item"
	CallbackBackToCategories CallbackKind = "back_to_categories"
)

// Date choice values carried by CallbackDateChoice
const (
	DateToday    = "today"
	DateTomorrow = "tomorrow"
	DateDayAfter = "dayafter"
	DateNone     = "none"
	DateManual   = "manual"
)

// Back targets carried by CallbackBack
const (
	BackToMediumGroups   = "medium"
	BackToCampaignGroups = "campaign"
)

// Callback is a decoded inline-button press. Tokens are colon-delimited:
// "src:<slug>", "adddate:today", "delete_item:<category>:<slug>", ...
// Decoding happens once at the transport boundary so the handlers only
// ever switch on Kind.
type Callback struct {
	Kind  CallbackKind
	Value string // slug, group, date choice or category id
	Slug  string // second argument of delete_item
}

// DecodeCallback parses a raw callback token. Unknown or malformed
// tokens are an error, the caller acknowledges them as a no-op.
func DecodeCallback(data string) (Callback, error) {
	parts := strings.SplitN(data, ":", 3)
	kind := CallbackKind(parts[0])

	switch kind {
	case CallbackBackToCategories:
		if len(parts) != 1 {
			return Callback{}, fmt.Errorf("callback %q: unexpected argument", data)
		}
		return Callback{Kind: kind}, nil

	case CallbackSource, CallbackMediumGroup, CallbackMedium,
		CallbackCampaignGroup, CallbackCampaign, CallbackDateChoice,
		CallbackBack, CallbackAddCategory, CallbackViewCategory:
		if len(parts) != 2 || parts[1] == "" {
			return Callback{}, fmt.Errorf("callback %q: missing argument", data)
		}
		return Callback{Kind: kind, Value: parts[1]}, nil

	case CallbackDeleteItem:
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return Callback{}, fmt.Errorf("callback %q: want category and slug", data)
		}
		return Callback{Kind: kind, Value: parts[1], Slug: parts[2]}, nil
	}

	return Callback{}, fmt.Errorf("unknown callback token %q", data)
}

// Encode renders the callback back into its token form, used when
// building inline keyboards.
func (c Callback) Encode() string {
	switch {
	case c.Slug != "":
		return string(c.Kind) + ":" + c.Value + ":" + c.Slug
	case c.Value != "":
		return string(c.Kind) + ":" + c.Value
	default:
		return string(c.Kind)
	}
}
