package templates

var errorTemplate = `{{define "screen-error"}}<section class="screen screen-error">
  <h1>Something went wrong</h1>
  <p class="error-message">{{.Message}}</p>
  <form method="post" action="{{.CloseAction}}">
    <button type="submit">Close</button>
  </form>
</section>{{end}}`

var grantTemplate = `{{define "screen-grant"}}<section class="screen screen-grant" data-messages-endpoint="{{.MessagesEndpoint}}">
  <h1>Grant permissions</h1>
  <p>{{.Grantee}} is requesting permission to act on behalf of {{.AccountID}}:</p>
  <ul class="grant-permissions">
    {{range .Contracts}}<li>Execute contract <code>{{.}}</code></li>
    {{end}}{{if .Stake}}<li>Manage staking and withdraw rewards</li>
    {{end}}{{range .Bank}}<li>Send up to <code>{{.}}</code></li>
    {{end}}
  </ul>
  <button type="button" id="grant-allow">Allow and continue</button>
  <script>
    (function () {
      var section = document.currentScript.parentElement;
      document.getElementById("grant-allow").addEventListener("click", function () {
        fetch(section.dataset.messagesEndpoint, { method: "POST", credentials: "same-origin" })
          .then(function (res) { return res.json(); })
          .then(function (body) {
            document.dispatchEvent(new CustomEvent("abstraxion:grant", { detail: body }));
          });
      });
    })();
  </script>
</section>{{end}}`

var walletsTemplate = `{{define "screen-wallets"}}<section class="screen screen-wallets">
  <h1>Welcome</h1>
  {{if .AccountID}}<p class="account-id">Account <code>{{.AccountID}}</code></p>
  {{else}}<p class="account-pending">No smart account found for this login yet.</p>
  {{end}}{{if .WalletAddress}}<p class="wallet">Connected wallet <code>{{.WalletAddress}}</code>{{if .WalletType}} ({{.WalletType}}){{end}}</p>
  <form method="post" action="{{.DisconnectAction}}">
    <button type="submit">Disconnect</button>
  </form>
  {{end}}
</section>{{end}}`

var signinTemplate = `{{define "screen-signin"}}<section class="screen screen-signin">
  <h1>Welcome to XION</h1>
  <p>Log in or sign up with your wallet.</p>
  {{if .ConnectURI}}<a class="connect-link" href="{{.ConnectURI}}">Open wallet</a>
  {{if .QRCodeDataURL}}<img class="connect-qr" src="{{.QRCodeDataURL}}" alt="Scan to connect" width="256" height="256">{{end}}
  {{end}}
</section>{{end}}`
