// Package templates holds the HTML of the dashboard modal. Each screen is a
// named template rendered into the "base" page.
package templates

import (
	"fmt"
	"html/template"
)

// Screen template names
const (
	TemplateBase    = "base"
	TemplateError   = "screen-error"
	TemplateGrant   = "screen-grant"
	TemplateWallets = "screen-wallets"
	TemplateSignIn  = "screen-signin"
)

// Parse compiles every dashboard template.
func Parse() (*template.Template, error) {
	tmpl, err := template.New(TemplateBase).Parse(
		baseTemplate + footerTemplate + errorTemplate + grantTemplate + walletsTemplate + signinTemplate,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compile dashboard templates: %w", err)
	}
	return tmpl, nil
}

// MustParse is Parse for package initialization.
func MustParse() *template.Template {
	tmpl, err := Parse()
	if err != nil {
		panic(err)
	}
	return tmpl
}

var baseTemplate = `{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>XION Dashboard</title>
</head>
<body>
  <main id="dashboard" data-network="{{.NetworkLabel}}">
    {{if .Open}}
    <dialog id="abstraxion-modal" open class="modal{{if not .Mainnet}} modal-testnet{{end}}" data-screen="{{.ScreenKind}}">
      {{.ScreenHTML}}
    </dialog>
    <form id="abstraxion-close" method="post" action="{{.CloseAction}}" hidden></form>
    <script>
      (function () {
        var form = document.getElementById("abstraxion-close");
        function closeOnEscKey(e) {
          if (e.key === "Escape") {
            document.removeEventListener("keydown", closeOnEscKey);
            form.submit();
          }
        }
        document.addEventListener("keydown", closeOnEscKey);
      })();
    </script>
    {{else}}
    <form method="post" action="{{.OpenAction}}">
      <button type="submit" class="modal-open">Connect</button>
    </form>
    {{end}}
  </main>
  {{if and .Open .ShowTermsFooter}}{{template "footer" .}}{{end}}
</body>
</html>{{end}}`

var footerTemplate = `{{define "footer"}}<footer class="tos-footer">
  <div class="tos-disclaimer">
    <span>By continuing, you agree to and acknowledge that you have read and understand the</span>
    <a href="{{.DisclaimerURL}}">Disclaimer</a><span>.</span>
  </div>
  <div class="tos-powered-by">
    <p>Powered by</p>
    <div class="network-badge network-badge-{{if .Mainnet}}mainnet{{else}}testnet{{end}}">{{.NetworkLabel}}</div>
    <a href="{{.PoweredByURL}}">XION</a>
  </div>
</footer>{{end}}`
