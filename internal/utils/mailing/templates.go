package mailing

import (
	"fmt"
	"html"
)

func ContactMessageBody(name, email, subject, message string) string {
	return fmt.Sprintf(
		"<p><b>%s</b> &lt;%s&gt; sent a message via the contact form.</p><p><b>%s</b></p><p>%s</p>",
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(subject),
		html.EscapeString(message),
	)
}

func FoodRequestBody(appURL, foodName, requesterEmail string) string {
	return fmt.Sprintf(
		"<p>%s requested <b>%s</b>.</p><p><a href=\"%s/yemek_verenler\">Open your listings</a></p>",
		html.EscapeString(requesterEmail),
		html.EscapeString(foodName),
		appURL,
	)
}
