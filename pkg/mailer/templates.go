package mailer

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
)

var welcomeHTML = htmltpl.Must(htmltpl.New("welcome").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif; color: #222;">
    <h2>Welcome to {{.AppName}}, {{.Name}}!</h2>
    <p>Your account is ready. Sign in with {{.Email}} and publish your first post.</p>
    <p style="color: #888; font-size: 12px;">If you did not create this account, you can ignore this email.</p>
  </body>
</html>`))

// RenderWelcome builds subject, text, and HTML bodies for the welcome email.
// Data keys: Name, Email, AppName.
func RenderWelcome(data map[string]string) (subject, text, html string, err error) {
	appName := data["AppName"]
	if appName == "" {
		appName = "our blog"
	}
	subject = fmt.Sprintf("Welcome to %s", appName)
	text = fmt.Sprintf("Hi %s, your account is ready. Sign in with %s and publish your first post.",
		data["Name"], data["Email"])

	var buf bytes.Buffer
	if err = welcomeHTML.Execute(&buf, map[string]string{
		"AppName": appName,
		"Name":    data["Name"],
		"Email":   data["Email"],
	}); err != nil {
		return "", "", "", err
	}
	return subject, text, buf.String(), nil
}
