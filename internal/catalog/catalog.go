// Copyright (c) 2026 Elegant Global. All rights reserved.
// Author: info@elegant.global

/*
Package catalog defines the multilingual product-catalog domain model.

# Overview

The catalog is a two-level tree: categories own products, and both carry a
set of per-language translations. Nothing in the model is ever shown to a
visitor directly; the public API localizes it first (see the localize and
public subpackages).

# Keys

Both entities carry a stable URL-safe key next to their UUID. Category keys
are chosen by administrators; product keys are derived from the product's
title at creation time and never change afterwards.
*/
package catalog

import (
	"encoding/json"
	"time"
)

// # Category Entities

// Category groups products and carries its own translation set.
type Category struct {
	ID string `json:"id"` // UUIDv7

	// Key is the admin-chosen unique identifier, e.g. "skincare".
	Key string `json:"key"`

	// References is an opaque ordered blob of reference objects shown
	// alongside the category. The backend stores and returns it verbatim.
	References json.RawMessage `json:"references,omitempty"`

	Translations []CategoryTranslation `json:"translations"`

	// Products is populated on admin list views only.
	Products []Product `json:"products,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryTranslation is one language's rendering of a category.
// At most one exists per (category, language_code) pair.
type CategoryTranslation struct {
	LanguageCode string `json:"language_code"`
	Title        string `json:"title"`
	Intro        string `json:"intro,omitempty"`
}

// TranslationLanguage implements [localize.Translated].
func (translation CategoryTranslation) TranslationLanguage() string {
	return translation.LanguageCode
}

// # Product Entities

// Product is a single catalog item owned by exactly one category.
type Product struct {
	ID         string `json:"id"` // UUIDv7
	CategoryID string `json:"category_id"`

	// Key is the derived unique slug, e.g. "hydrating-serum".
	// Assigned once at creation and immutable afterwards.
	Key string `json:"key"`

	// ImageURL is an opaque reference produced by the image store.
	// nil means the product has no image.
	ImageURL *string `json:"image_url,omitempty"`

	Translations []ProductTranslation `json:"translations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductTranslation is one language's rendering of a product.
// Title and description are required fields but may be empty strings.
type ProductTranslation struct {
	LanguageCode string `json:"language_code"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

// TranslationLanguage implements [localize.Translated].
func (translation ProductTranslation) TranslationLanguage() string {
	return translation.LanguageCode
}

// # Localized Projections

// LocalizedProduct is a product flattened to a single resolved language.
type LocalizedProduct struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	ImageURL    *string `json:"image_url,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// LocalizedCategory is a category flattened to a single resolved language.
//
// Categories without a usable translation keep empty title and intro;
// products without one are dropped from Products entirely.
type LocalizedCategory struct {
	ID         string             `json:"id"`
	Key        string             `json:"key"`
	References json.RawMessage    `json:"references,omitempty"`
	Title      string             `json:"title"`
	Intro      string             `json:"intro,omitempty"`
	Products   []LocalizedProduct `json:"products"`
}
