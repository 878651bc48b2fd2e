package serve

import (
	"html"
	"net/http"
	"strings"

	"github.com/angeljsb/reactive/pkg/rdom"
)

// handleIndex lists the mounted pages.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var b strings.Builder
	title := s.name
	if title == "" {
		title = "reactive preview"
	}

	b.WriteString("<ul class=\"pages\">")
	for _, p := range s.pages {
		b.WriteString("<li><a href=\"/p/" + p.Name + "\">")
		b.WriteString(html.EscapeString(p.Title))
		b.WriteString("</a></li>")
	}
	b.WriteString("</ul>")

	writeShell(w, title, b.String(), false)
}

// handlePage server-renders a fresh instance of the page's kind and
// serves the shell that will upgrade it over WebSocket.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	p := s.lookupPage(w, r)
	if p == nil {
		return
	}

	_, finish := s.tracer.startPage(r.Context(), p.Name)
	defer finish()
	s.metrics.recordPageView(p.Name)

	c := p.Kind.New()
	root := c.Get(nil)

	title := p.Title
	if s.name != "" {
		title = p.Title + " · " + s.name
	}
	body := "<div id=\"app\" data-page=\"" + p.Name + "\">" + rdom.RenderHTML(root) + "</div>"
	writeShell(w, title, body, true)

	s.logger.Debug("page rendered", "page", p.Name)
}

func writeShell(w http.ResponseWriter, title, body string, live bool) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</title>\n</head>\n<body>\n")
	b.WriteString(body)
	if live {
		b.WriteString("\n<script src=\"/client.js\"></script>")
	}
	b.WriteString("\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(b.String()))
}

// handleClientJS serves the thin client that applies streamed mutations
// and forwards DOM events.
func (s *Server) handleClientJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(clientJS))
}

// clientJS is the browser half of the live channel. It resolves node
// paths the same way the server computes them: child indices from the
// app root.
const clientJS = `(function () {
  "use strict";

  var app = document.getElementById("app");
  if (!app) return;
  var page = app.getAttribute("data-page");
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws/" + page);

  function root() {
    return app.firstElementChild;
  }

  function resolve(path) {
    var n = root();
    for (var i = 0; n && i < path.length; i++) {
      n = n.childNodes[path[i]];
    }
    return n;
  }

  function nodeFromHTML(html) {
    var tpl = document.createElement("template");
    tpl.innerHTML = html;
    return tpl.content.firstChild;
  }

  function apply(op) {
    var n = resolve(op.path);
    if (!n) return;
    switch (op.op) {
      case "SetText":
        n.textContent = op.value;
        break;
      case "SetAttr":
        n.setAttribute(op.name, op.value);
        break;
      case "RemoveAttr":
        n.removeAttribute(op.name);
        break;
      case "InsertChild":
        n.insertBefore(nodeFromHTML(op.html), n.childNodes[op.index] || null);
        break;
      case "RemoveChild":
        if (n.childNodes[op.index]) n.removeChild(n.childNodes[op.index]);
        break;
      case "ReplaceNode":
        n.replaceWith(nodeFromHTML(op.html));
        break;
      case "SetValue":
        n.value = op.value;
        break;
    }
  }

  ws.onmessage = function (msg) {
    var frame = JSON.parse(msg.data);
    if (frame.kind === "init") {
      app.innerHTML = frame.html;
    } else if (frame.kind === "ops") {
      (frame.ops || []).forEach(apply);
    }
  };

  function pathOf(n) {
    var path = [];
    while (n && n !== root()) {
      var parent = n.parentNode;
      path.unshift(Array.prototype.indexOf.call(parent.childNodes, n));
      n = parent;
    }
    return path;
  }

  function forward(e) {
    if (!root() || !root().contains(e.target)) return;
    var frame = { type: e.type, path: pathOf(e.target) };
    if (e.type === "input" || e.type === "change") {
      frame.value = e.target.value;
    }
    ws.send(JSON.stringify(frame));
  }

  ["click", "input", "change", "submit"].forEach(function (type) {
    app.addEventListener(type, function (e) {
      if (type === "submit") e.preventDefault();
      forward(e);
    });
  });
})();
`
