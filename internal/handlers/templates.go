package handlers

import "html/template"

const baseTmpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<nav>
<ul class="menu">
{{- range .Menu.Items}}
{{- if eq .ID "logoutBtn"}}
<li><form method="post" action="{{.Href}}"><button type="submit" id="{{.ID}}">{{.Label}}</button></form></li>
{{- else}}
<li><a href="{{.Href}}" id="{{.ID}}">{{.Label}}</a></li>
{{- end}}
{{- end}}
</ul>
</nav>
<main>
<h1>{{.Title}}</h1>
{{- if .Error}}
<p class="error">{{.Error}}</p>
{{- end}}
{{- if .LoginForm}}
<form method="post" action="{{.LoginAction}}">
<input type="text" name="username" value="{{.Username}}">
<input type="password" name="password">
<button type="submit">Log in</button>
</form>
{{- end}}
</main>
</body>
</html>
`

var pageTemplate = template.Must(template.New("base").Parse(baseTmpl))
