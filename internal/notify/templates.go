package notify

import (
	htmltemplate "html/template"
	"text/template"
)

var funcs = template.FuncMap{
	"date": FormatDate,
	"time": FormatTime,
}

var htmlFuncs = htmltemplate.FuncMap{
	"date": FormatDate,
	"time": FormatTime,
}

var subjects = template.Must(template.New("subjects").Funcs(funcs).Parse(`
{{- define "confirmation" }}Your chai is booked — {{ date .Booking.Date }} at {{ time .Booking.Time }}{{ end -}}
{{- define "new-booking" }}New booking — {{ .Booking.Name }} on {{ date .Booking.Date }} at {{ time .Booking.Time }}{{ end -}}
{{- define "cancellation-alert" }}Booking cancelled — {{ .Booking.Name }} for {{ .Booking.Date }} at {{ .Booking.Time }}{{ end -}}
`))

var texts = template.Must(template.New("texts").Funcs(funcs).Parse(`
{{- define "confirmation" -}}
Hi {{ .Booking.Name }},

Your slot is booked: {{ .Booking.Date }} at {{ .Booking.Time }}.

Join the call (your name is pre-filled): {{ .MeetingLink }}

Can't make it? Cancel here: {{ .CancelURL }}

— {{ .StudioName }}
{{- end -}}

{{- define "new-booking" -}}
New booking

Name: {{ .Booking.Name }}
Email: {{ .Booking.Email }}
Date: {{ .Booking.Date }}
Time: {{ .Booking.Time }}
{{ with .Booking.Message }}
Context:
{{ . }}
{{ end }}
Your join link (name pre-filled): {{ .MeetingLink }}
{{- end -}}

{{- define "cancellation-alert" -}}
A booking was cancelled:

Name: {{ .Booking.Name }}
Email: {{ .Booking.Email }}
Date: {{ .Booking.Date }}
Time: {{ .Booking.Time }}

The slot is now available again.
{{- end -}}
`))

var htmls = htmltemplate.Must(htmltemplate.New("htmls").Funcs(htmlFuncs).Parse(`
{{- define "shell-start" -}}
<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8" /><meta name="viewport" content="width=device-width, initial-scale=1" /></head>
<body style="margin:0;padding:48px 16px;background-color:#0a0a0c;font-family:-apple-system,'Segoe UI',Helvetica,Arial,sans-serif;color:#f9fafb;">
<div style="max-width:600px;margin:0 auto;padding:48px 40px;border:1px solid rgba(255,255,255,0.08);border-radius:24px;">
{{- end -}}

{{- define "shell-end" -}}
<p style="margin-top:48px;font-size:13px;color:#9ca3af;">{{ .StudioName }}</p>
</div>
</body>
</html>
{{- end -}}

{{- define "confirmation" -}}
{{ template "shell-start" . }}
<h1 style="font-size:36px;">Your chai is booked</h1>
<p style="color:#9ca3af;">Hi {{ .Booking.Name }}, looking forward to talking it through over a virtual chai.</p>
<p><strong>Date</strong><br />{{ date .Booking.Date }}</p>
<p><strong>Time</strong><br />{{ time .Booking.Time }}</p>
<p><a href="{{ .MeetingLink }}" style="color:#e67e22;">Join the Call →</a></p>
<p style="color:#9ca3af;">Can&rsquo;t make it? <a href="{{ .CancelURL }}" style="color:#e67e22;">Cancel this booking</a> and we&rsquo;ll find another time.</p>
{{ template "shell-end" . }}
{{- end -}}

{{- define "new-booking" -}}
{{ template "shell-start" . }}
<h1 style="font-size:36px;">New Booking</h1>
<p style="color:#9ca3af;">{{ .Booking.Name }} just booked a slot with you.</p>
<p><strong>Name</strong><br />{{ .Booking.Name }}</p>
<p><strong>Email</strong><br /><a href="mailto:{{ .Booking.Email }}" style="color:#e67e22;">{{ .Booking.Email }}</a></p>
<p><strong>Date &amp; Time</strong><br />{{ date .Booking.Date }} &nbsp;·&nbsp; {{ time .Booking.Time }}</p>
{{ with .Booking.Message }}<p><strong>Message</strong><br />{{ . }}</p>{{ end }}
<p><a href="{{ .MeetingLink }}" style="color:#e67e22;">Join the Call →</a></p>
{{ template "shell-end" . }}
{{- end -}}
`))
