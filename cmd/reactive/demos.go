package main

import (
	"github.com/angeljsb/reactive"
	"github.com/angeljsb/reactive/el"
	"github.com/angeljsb/reactive/pkg/rdom"
)

// demo is one entry in the preview gallery.
type demo struct {
	Name  string
	Title string
	Kind  *reactive.Kind
}

func demoGallery() []demo {
	return []demo{
		{Name: "counter", Title: "Counter", Kind: counterDemo()},
		{Name: "greeter", Title: "Greeter", Kind: greeterDemo()},
		{Name: "todo", Title: "Todo List", Kind: todoDemo()},
	}
}

func demoByName(name string) (demo, bool) {
	for _, d := range demoGallery() {
		if d.Name == name {
			return d, true
		}
	}
	return demo{}, false
}

func counterDemo() *reactive.Kind {
	return reactive.Define(reactive.Config{
		Template: func(c *reactive.Component) *rdom.Node {
			count, _ := c.State()["count"].(int)
			return el.Div(el.Class("counter"),
				el.H1(el.Text("Counter")),
				el.P(el.Span(el.Class("count"), el.Textf("%d", count))),
				el.Button(el.Class("dec"), el.Text("-")),
				el.Button(el.Class("inc"), el.Text("+")),
			)
		},
		InitialState: map[string]any{"count": 0},
		Events: []reactive.EventDef{
			{Type: "click", Selector: "button.inc", Listener: bumpCount(1)},
			{Type: "click", Selector: "button.dec", Listener: bumpCount(-1)},
		},
	})
}

func bumpCount(delta int) reactive.EventListener {
	return func(c *reactive.Component, e *rdom.Event) {
		count, _ := c.State()["count"].(int)
		c.SetState(reactive.Set("count", count+delta))
	}
}

func greeterDemo() *reactive.Kind {
	return reactive.Define(reactive.Config{
		Template: func(c *reactive.Component) *rdom.Node {
			name, _ := c.State()["name"].(string)
			greeting := "Hello, stranger!"
			if name != "" {
				greeting = "Hello, " + name + "!"
			}
			return el.Div(el.Class("greeter"),
				el.H1(el.Text("Greeter")),
				el.Input(el.Type("text"), el.Placeholder("Your name")),
				el.P(el.Text(greeting)),
			)
		},
		InitialState: map[string]any{"name": ""},
		Events: []reactive.EventDef{
			{Type: "input", Selector: "input", Listener: func(c *reactive.Component, e *rdom.Event) {
				c.SetState(reactive.Set("name", e.Value))
			}},
		},
	})
}

func todoDemo() *reactive.Kind {
	return reactive.Define(reactive.Config{
		Template: func(c *reactive.Component) *rdom.Node {
			items, _ := c.State()["items"].([]string)
			draft, _ := c.State()["draft"].(string)
			return el.Div(el.Class("todo"),
				el.H1(el.Text("Todo List")),
				el.Form(
					el.Input(el.Type("text"), el.Value(draft), el.Placeholder("What needs doing?")),
					el.Button(el.Type("submit"), el.Text("Add")),
				),
				el.Ul(rdom.Range(items, func(item string, i int) *rdom.Node {
					return el.Li(el.Text(item))
				})),
				rdom.When(len(items) > 0, func() *rdom.Node {
					return el.Button(el.Class("clear"), el.Textf("Clear %d", len(items)))
				}),
			)
		},
		InitialState: map[string]any{"items": []string{}, "draft": ""},
		Events: []reactive.EventDef{
			{Type: "input", Selector: "input", Listener: func(c *reactive.Component, e *rdom.Event) {
				c.SetState(reactive.Set("draft", e.Value))
			}},
			{Type: "submit", Selector: "form", Listener: func(c *reactive.Component, e *rdom.Event) {
				draft, _ := c.State()["draft"].(string)
				if draft == "" {
					return
				}
				items, _ := c.State()["items"].([]string)
				next := append(append([]string{}, items...), draft)
				c.SetState(
					reactive.Set("items", next),
					reactive.Set("draft", ""),
				)
			}},
			{Type: "click", Selector: "button.clear", Listener: func(c *reactive.Component, e *rdom.Event) {
				c.SetState(
					reactive.Set("items", []string{}),
					reactive.Set("draft", ""),
				)
			}},
		},
	})
}
