package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-acfield/pkg/field"
)

type scriptedDriver struct {
	inputs   []string
	selects  []int
	confirms []bool
	asked    []string
	err      error
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.asked = append(d.asked, cfg.Message)
	if d.err != nil {
		return "", d.err
	}
	var out string
	if len(d.inputs) > 0 {
		out, d.inputs = d.inputs[0], d.inputs[1:]
	}
	if out == "" {
		out = cfg.Default
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.asked = append(d.asked, cfg.Message)
	var out bool
	if len(d.confirms) > 0 {
		out, d.confirms = d.confirms[0], d.confirms[1:]
	}
	return out, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.asked = append(d.asked, cfg.Message)
	var out int
	if len(d.selects) > 0 {
		out, d.selects = d.selects[0], d.selects[1:]
	}
	return out, nil
}

func TestCompleteAsksForEverythingMissing(t *testing.T) {
	d := &scriptedDriver{
		inputs:   []string{"opening", "", "Opens", "42"},
		selects:  []int{5},
		confirms: []bool{true},
	}

	got, err := Complete(context.Background(), d, Request{}, nil)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := Request{
		Key:  "opening",
		Args: field.Config{Type: field.TypeDate, DateFormat: field.DefaultDateFormat, Label: "Opens"},
		Item: "42",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
	wantAsked := []string{"Field key", "Field type", "Date format", "Add a label?", "Label", "Item"}
	if diff := cmp.Diff(wantAsked, d.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}

func TestCompleteKeepsProvidedValues(t *testing.T) {
	d := &scriptedDriver{}
	req := Request{
		Key:  "category",
		Args: field.Config{Type: field.TypeTermLink, Taxonomy: "category", Label: "Filed under"},
		Item: "7",
	}

	got, err := Complete(context.Background(), d, req, nil)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if diff := cmp.Diff(req, got); diff != "" {
		t.Fatalf("request changed (-want +got):\n%s", diff)
	}
	if len(d.asked) != 0 {
		t.Fatalf("expected no prompts, got %v", d.asked)
	}
}

func TestCompletePostListShape(t *testing.T) {
	d := &scriptedDriver{selects: []int{1}}
	req := Request{Key: "related", Args: field.Config{Type: field.TypePostList, Label: "Related"}, Item: "1"}

	got, err := Complete(context.Background(), d, req, nil)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if got.Args.ListType != field.ListIDs {
		t.Fatalf("expected ids list shape, got %q", got.Args.ListType)
	}
}

func TestCompleteRequiresTaxonomy(t *testing.T) {
	d := &scriptedDriver{inputs: []string{""}}
	req := Request{Key: "topic", Args: field.Config{Type: field.TypeTerm}}

	if _, err := Complete(context.Background(), d, req, nil); err == nil {
		t.Fatalf("expected validation error for empty taxonomy")
	}
}

func TestCompleteAborted(t *testing.T) {
	d := &scriptedDriver{err: ErrAborted}
	if _, err := Complete(context.Background(), d, Request{}, nil); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestCompleteSkipsConfiguredOptions(t *testing.T) {
	configured := func(key string) field.Config {
		if key != "website" {
			return field.Config{}
		}
		return field.Config{Type: field.TypeLink, LinkText: "Visit", Label: "Site"}
	}
	d := &scriptedDriver{inputs: []string{"website", ""}}

	got, err := Complete(context.Background(), d, Request{}, configured)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	want := Request{Key: "website"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Field key", "Item"}, d.asked); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
}
