package view

import (
	"html/template"
	"io"

	"github.com/ganot/taskboard/internal/domain/board"
)

type columnData struct {
	Status   board.Status
	Heading  string
	Projects []board.Project
}

var columnTmpl = template.Must(template.New("column").Parse(`<section class="column" id="column-{{.Status}}" data-status="{{.Status}}">
  <header><h2>{{.Heading}}</h2></header>
  <ul class="project-list">
{{- range .Projects}}
    <li class="project" draggable="true" data-id="{{.ID}}">
      <h3>{{.Title}}</h3>
      <h4>{{.People}} {{if eq .People 1}}person{{else}}people{{end}} assigned</h4>
      <p>{{.Description}}</p>
    </li>
{{- end}}
  </ul>
</section>
`))

type pageData struct {
	Active   template.HTML
	Finished template.HTML
}

// RenderBoard writes the full board page, with both column fragments
// already inlined.
func RenderBoard(w io.Writer, activeFragment, finishedFragment string) error {
	return pageTmpl.Execute(w, pageData{
		Active:   template.HTML(activeFragment),
		Finished: template.HTML(finishedFragment),
	})
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Task Board</title>
  <style>
    body { font-family: sans-serif; margin: 0; background: #f4f4f4; }
    h1 { background: #31004a; color: white; margin: 0; padding: 1rem; }
    form { margin: 1rem; padding: 1rem; background: white; border: 1px solid #ccc; max-width: 40rem; }
    form label { display: block; margin-top: 0.5rem; font-weight: bold; }
    form input, form textarea { width: 100%; box-sizing: border-box; padding: 0.25rem; }
    form button { margin-top: 0.75rem; padding: 0.5rem 1.5rem; }
    main { display: flex; gap: 1rem; margin: 1rem; align-items: flex-start; }
    .column { flex: 1; background: white; border: 1px solid #ccc; min-height: 10rem; }
    .column header { background: #5a0091; color: white; padding: 0.5rem; }
    .column header h2 { margin: 0; font-size: 1rem; }
    .column.droppable { background: #ffe3ee; }
    .project-list { list-style: none; margin: 0; padding: 0.5rem; }
    .project { border: 1px solid #5a0091; margin-bottom: 0.5rem; padding: 0.5rem; background: white; cursor: grab; }
    .project h3, .project h4 { margin: 0 0 0.25rem; }
    .project p { margin: 0; }
  </style>
</head>
<body>
  <h1>Task Board</h1>
  <form id="project-form" method="post" action="/projects">
    <label for="title">Title</label>
    <input type="text" id="title" name="title">
    <label for="description">Description</label>
    <textarea id="description" name="description" rows="3"></textarea>
    <label for="people">People</label>
    <input type="number" id="people" name="people" step="1" min="1" max="5">
    <button type="submit">ADD PROJECT</button>
  </form>
  <main>
    {{.Active}}
    {{.Finished}}
  </main>
  <script>
    (function () {
      function wireProjects() {
        document.querySelectorAll(".project").forEach(function (item) {
          item.addEventListener("dragstart", function (event) {
            event.dataTransfer.setData("text/plain", item.dataset.id);
            event.dataTransfer.effectAllowed = "move";
          });
        });
      }

      function wireColumns() {
        document.querySelectorAll(".column").forEach(function (column) {
          column.addEventListener("dragover", function (event) {
            if (event.dataTransfer.types[0] === "text/plain") {
              event.preventDefault();
              column.classList.add("droppable");
            }
          });
          column.addEventListener("dragleave", function () {
            column.classList.remove("droppable");
          });
          column.addEventListener("drop", function (event) {
            event.preventDefault();
            column.classList.remove("droppable");
            var id = event.dataTransfer.getData("text/plain");
            fetch("/columns/" + column.dataset.status + "/drop", {
              method: "POST",
              headers: { "Content-Type": "text/plain" },
              body: id
            }).then(refresh);
          });
        });
      }

      function wire() {
        wireProjects();
        wireColumns();
      }

      function refresh() {
        return Promise.all(["active", "finished"].map(function (status) {
          return fetch("/columns/" + status)
            .then(function (resp) { return resp.text(); })
            .then(function (html) {
              document.getElementById("column-" + status).outerHTML = html;
            });
        })).then(wire);
      }

      document.getElementById("project-form").addEventListener("submit", function (event) {
        event.preventDefault();
        var form = event.target;
        fetch("/projects", {
          method: "POST",
          body: new URLSearchParams(new FormData(form))
        }).then(function (resp) {
          if (!resp.ok) {
            resp.text().then(function (msg) {
              alert(msg || "Invalid input, please try again!");
            });
            return;
          }
          form.reset();
          refresh();
        });
      });

      wire();
    })();
  </script>
</body>
</html>
`))
