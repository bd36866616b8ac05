package menu

import "errors"

var (
	// ErrNoMenu indicates an operation was invoked without a menu handle.
	ErrNoMenu = errors.New("no menu selected")
	// ErrMenuInUse indicates the menu is referenced by a service and cannot
	// be deleted or edited wholesale.
	ErrMenuInUse = errors.New("menu is in use by a service")
	// ErrNotOwner indicates the current user does not own the menu.
	ErrNotOwner = errors.New("current user does not own the menu")
	// ErrSectionNotInMenu indicates the section does not belong to the menu.
	ErrSectionNotInMenu = errors.New("section is not part of this menu")
	// ErrItemNotInMenu indicates the item does not belong to the menu.
	ErrItemNotInMenu = errors.New("menu item is not part of this menu")
	// ErrItemNotInSection indicates the item does not belong to the section.
	ErrItemNotInSection = errors.New("menu item is not part of this section")
	// ErrPositionOutOfRange indicates a reorder target outside
	// [0, currentCount). This is a contract violation by the caller, not a
	// recoverable business failure.
	ErrPositionOutOfRange = errors.New("position out of range")
)
