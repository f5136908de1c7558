// Package assembly turns a profile selection over the master resume into a
// render-ready document, and advises on section ordering.
package assembly

import (
	"github.com/jonathan/resumint/internal/types"
)

// Options carries the optional content overrides applied during assembly.
type Options struct {
	// BulletOverrides maps bullet id to replacement text. Applied after
	// filtering, so an override targets a specific bullet no matter which
	// entries include it.
	BulletOverrides map[string]string
	// ExtraSkills maps skill-category id to additional skill strings appended
	// to that category's items.
	ExtraSkills map[string][]string
	// SummaryOverride supersedes the profile's chosen summary variant when
	// non-empty.
	SummaryOverride string
}

// Assemble resolves a profile against the master resume into a document.
// Pure and deterministic: identical inputs yield a structurally identical
// document. Ids the master record no longer contains are silently dropped so
// stale profiles keep working after master edits.
func Assemble(master *types.MasterResume, profile *types.Profile, opts *Options) *types.Document {
	if opts == nil {
		opts = &Options{}
	}

	summary := opts.SummaryOverride
	if summary == "" {
		if variant := master.FindSummary(profile.Summary); variant != nil {
			summary = variant.Text
		}
	}

	doc := &types.Document{
		Name:     master.Name,
		Email:    master.Email,
		Phone:    master.Phone,
		LinkedIn: master.LinkedIn,
		GitHub:   master.GitHub,
		Website:  master.Website,
		Summary:  summary,
		Sections: append([]string(nil), profile.Sections...),
	}

	for _, ref := range profile.Experience {
		exp := master.FindExperience(ref.ID)
		if exp == nil {
			continue
		}
		entry := *exp
		entry.Bullets = filterBullets(exp.Bullets, ref, opts.BulletOverrides)
		doc.Experience = append(doc.Experience, entry)
	}

	for _, ref := range profile.Projects {
		proj := master.FindProject(ref.ID)
		if proj == nil {
			continue
		}
		entry := *proj
		entry.Bullets = filterBullets(proj.Bullets, ref, opts.BulletOverrides)
		doc.Projects = append(doc.Projects, entry)
	}

	doc.Education = filterEducation(master.Education, profile.Education)
	doc.Skills = filterSkills(master.Skills, profile.Skills, opts.ExtraSkills)

	return doc
}

// filterBullets keeps exactly the bullets the ref lists, in master order, and
// applies text overrides by id.
func filterBullets(bullets []types.Bullet, ref types.EntryRef, overrides map[string]string) []types.Bullet {
	wanted := ref.BulletIDSet()
	out := make([]types.Bullet, 0, len(ref.Bullets))
	for _, bullet := range bullets {
		if !wanted[bullet.ID] {
			continue
		}
		if text, ok := overrides[bullet.ID]; ok {
			bullet.Text = text
		}
		out = append(out, bullet)
	}
	return out
}

// filterEducation keeps the referenced education entries in master order.
func filterEducation(entries []types.Education, ids []string) []types.Education {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]types.Education, 0, len(ids))
	for _, entry := range entries {
		if wanted[entry.ID] {
			out = append(out, entry)
		}
	}
	return out
}

// filterSkills keeps the referenced skill categories in master order and
// appends any extra skills per category.
func filterSkills(categories []types.SkillCategory, ids []string, extra map[string][]string) []types.SkillCategory {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := make([]types.SkillCategory, 0, len(ids))
	for _, cat := range categories {
		if !wanted[cat.ID] {
			continue
		}
		items := append([]string(nil), cat.Items...)
		if additions, ok := extra[cat.ID]; ok {
			items = append(items, additions...)
		}
		cat.Items = items
		out = append(out, cat)
	}
	return out
}
