package domain

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft is a task proposal that has not been added to the board yet.
// Drafts come from YAML files and from the assistant.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Priority    string   `json:"priority,omitempty" yaml:"priority,omitempty"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Assignee    string   `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	Epic        string   `json:"epic,omitempty" yaml:"epic,omitempty"`
	Sprint      string   `json:"sprint,omitempty" yaml:"sprint,omitempty"`
	Due         string   `json:"due,omitempty" yaml:"due,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Points      *int     `json:"points,omitempty" yaml:"points,omitempty"`
}

// ParseTaskDrafts parses a YAML file containing task drafts.
//
// The file may hold a list of drafts, a single draft, or several YAML
// documents separated by "---". For example:
//
//	---
//	- title: Fix login bug
//	  priority: high
//	  tags: [backend]
//	  description: |
//	    Steps to reproduce...
//	- title: Write release notes
func ParseTaskDrafts(content []byte) ([]TaskDraft, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, ErrEmptyFile
	}

	var drafts []TaskDraft
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("parse drafts: %w", err)
		}
		if len(node.Content) == 0 {
			continue
		}
		switch node.Content[0].Kind {
		case yaml.SequenceNode:
			var list []TaskDraft
			if err := node.Decode(&list); err != nil {
				return nil, fmt.Errorf("parse drafts: %w", err)
			}
			drafts = append(drafts, list...)
		case yaml.MappingNode:
			var d TaskDraft
			if err := node.Decode(&d); err != nil {
				return nil, fmt.Errorf("parse drafts: %w", err)
			}
			drafts = append(drafts, d)
		default:
			return nil, fmt.Errorf("parse drafts: unexpected %s", strings.TrimSpace(node.Content[0].Value))
		}
	}

	if len(drafts) == 0 {
		return nil, ErrNoTasksInFile
	}
	for i := range drafts {
		if err := drafts[i].Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	return drafts, nil
}

// Validate checks the title and any enum values present in the draft.
func (d *TaskDraft) Validate() error {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if d.Priority != "" {
		if _, err := ParsePriority(d.Priority); err != nil {
			return err
		}
	}
	if d.Type != "" {
		if _, err := ParseTaskType(d.Type); err != nil {
			return err
		}
	}
	if d.Due != "" {
		if _, err := ParseDate(d.Due); err != nil {
			return err
		}
	}
	return nil
}

// Patch converts the draft into creation fields. Empty draft fields are
// left unset so the engine applies its defaults.
func (d TaskDraft) Patch() (TaskPatch, error) {
	if err := d.Validate(); err != nil {
		return TaskPatch{}, err
	}
	title := d.Title
	p := TaskPatch{Title: &title}
	if d.Description != "" {
		desc := d.Description
		p.Description = &desc
	}
	if d.Priority != "" {
		pr, _ := ParsePriority(d.Priority)
		p.Priority = &pr
	}
	if d.Type != "" {
		tt, _ := ParseTaskType(d.Type)
		p.Type = &tt
	}
	if d.Assignee != "" {
		a := d.Assignee
		p.Assignee = &a
	}
	if d.Epic != "" {
		e := d.Epic
		p.EpicID = &e
	}
	if d.Sprint != "" {
		s := d.Sprint
		p.SprintID = &s
	}
	if d.Due != "" {
		due, _ := ParseDate(d.Due)
		p.DueDate = &due
	}
	if len(d.Tags) > 0 {
		tags := append([]string(nil), d.Tags...)
		p.Tags = &tags
	}
	if d.Points != nil {
		pts := *d.Points
		p.StoryPoints = &pts
	}
	return p, nil
}
