// Package compose renders item lists into the text sent to a contact.
package compose

import (
	"fmt"
	"strings"

	"github.com/LeventeLantos/household-messaging/internal/i18n"
	"github.com/LeventeLantos/household-messaging/internal/model"
)

// NoItemsMessage is returned for an empty item list in every language.
const NoItemsMessage = "No items to send."

type Composer struct {
	dict i18n.Dictionary
}

func New(dict i18n.Dictionary) *Composer {
	if dict == nil {
		dict = i18n.Static{}
	}
	return &Composer{dict: dict}
}

// Compose is deterministic: the same input always yields the same text.
func (c *Composer) Compose(kind model.MessageType, items []model.Item, lang i18n.Language, groupName string) string {
	if len(items) == 0 {
		return NoItemsMessage
	}

	var b strings.Builder
	b.WriteString(i18n.Message(greeting(kind), lang))
	b.WriteString("\n")
	if name := strings.TrimSpace(groupName); name != "" {
		fmt.Fprintf(&b, "*%s*\n", name)
	}

	n := 0
	for _, sec := range sections(items) {
		b.WriteString("\n")
		if sec.category != model.CategoryNone {
			fmt.Fprintf(&b, "*%s*\n", c.dict.Translate(string(sec.category), lang))
		}
		for _, it := range sec.items {
			n++
			fmt.Fprintf(&b, "%d. %s\n", n, c.line(it, lang))
		}
	}

	b.WriteString("\n")
	b.WriteString(i18n.Message(i18n.TotalLine, lang, len(items)))
	b.WriteString("\n")
	b.WriteString(i18n.Message(i18n.Closing, lang))
	return b.String()
}

func (c *Composer) line(it model.Item, lang i18n.Language) string {
	name := strings.TrimSpace(it.Name)
	s := c.dict.Emoji(name) + " " + c.dict.Translate(name, lang)
	if q := strings.TrimSpace(it.Quantity); q != "" {
		s += " - " + q
		if u := strings.TrimSpace(it.Unit); u != "" {
			s += " " + u
		}
	}
	if r := strings.TrimSpace(it.Remarks); r != "" {
		s += " (" + c.dict.Translate(r, lang) + ")"
	}
	return s
}

// Texts lists every string Compose will pass through the dictionary, for
// preparing a translation session ahead of composing.
func Texts(items []model.Item) []string {
	out := make([]string, 0, len(items)*2)
	for _, it := range items {
		out = append(out, strings.TrimSpace(it.Name))
		if r := strings.TrimSpace(it.Remarks); r != "" {
			out = append(out, r)
		}
	}
	return out
}

func greeting(kind model.MessageType) i18n.MessageKey {
	switch kind {
	case model.MealMessage:
		return i18n.GreetingMeal
	case model.GroceryMessage:
		return i18n.GreetingGrocery
	default:
		return i18n.GreetingTask
	}
}

type section struct {
	category model.Category
	items    []model.Item
}

// sections partitions items by category in first-appearance order, keeping
// the given order inside each section. Without any category there is a
// single unnamed section.
func sections(items []model.Item) []section {
	grouped := false
	for _, it := range items {
		if it.Category != model.CategoryNone {
			grouped = true
			break
		}
	}
	if !grouped {
		return []section{{items: items}}
	}

	var out []section
	index := make(map[model.Category]int)
	for _, it := range items {
		cat := it.Category
		if cat == model.CategoryNone {
			cat = model.CategoryOther
		}
		i, ok := index[cat]
		if !ok {
			i = len(out)
			index[cat] = i
			out = append(out, section{category: cat})
		}
		out[i].items = append(out[i].items, it)
	}
	return out
}
