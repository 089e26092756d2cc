package i18n

import (
	"strconv"
	"strings"
)

type EmailContent struct {
	Subject string
	Text    string
	HTML    string
}

type emailStrings struct {
	VerificationSubject string
	VerificationText    string
	VerificationHTML    string

	PasswordResetSubject string
	PasswordResetText    string
	PasswordResetHTML    string

	FallbackName string
}

var emailTranslations = map[string]emailStrings{
	"en": {
		VerificationSubject: "Verify Your Email Address",
		VerificationText: "Hello {name},\n\n" +
			"Thank you for signing up! Please verify your email address by visiting:\n{link}\n\n" +
			"This link will expire in {hours} hours.\n\n" +
			"If you didn't create an account, please ignore this email.",
		VerificationHTML: "<p>Hello {name},</p>" +
			"<p>Thank you for signing up! Please verify your email address by clicking the link below:</p>" +
			"<p><a href=\"{link}\">Verify Email</a></p>" +
			"<p>Or copy and paste this link into your browser:</p>" +
			"<p>{link}</p>" +
			"<p>This link will expire in {hours} hours.</p>" +
			"<p>If you didn't create an account, please ignore this email.</p>",

		PasswordResetSubject: "Reset Your Password",
		PasswordResetText: "Hello {name},\n\n" +
			"We received a request to reset your password. Visit this link to create a new password:\n{link}\n\n" +
			"This link will expire in {hours} hour(s).\n\n" +
			"If you didn't request a password reset, please ignore this email.",
		PasswordResetHTML: "<p>Hello {name},</p>" +
			"<p>We received a request to reset your password. Click the link below to create a new password:</p>" +
			"<p><a href=\"{link}\">Reset Password</a></p>" +
			"<p>Or copy and paste this link into your browser:</p>" +
			"<p>{link}</p>" +
			"<p>This link will expire in {hours} hour(s).</p>" +
			"<p>If you didn't request a password reset, please ignore this email or contact support if you have concerns.</p>",

		FallbackName: "there",
	},
	"de": {
		VerificationSubject: "E-Mail-Adresse verifizieren",
		VerificationText: "Hallo {name},\n\n" +
			"Danke für Ihre Registrierung! Bitte verifizieren Sie Ihre E-Mail-Adresse unter:\n{link}\n\n" +
			"Der Link ist {hours} Stunden gültig.\n\n" +
			"Wenn Sie kein Konto erstellt haben, ignorieren Sie diese E-Mail.",
		VerificationHTML: "<p>Hallo {name},</p>" +
			"<p>Danke für Ihre Registrierung! Bitte verifizieren Sie Ihre E-Mail-Adresse über den folgenden Link:</p>" +
			"<p><a href=\"{link}\">E-Mail verifizieren</a></p>" +
			"<p>Oder kopieren Sie diesen Link in Ihren Browser:</p>" +
			"<p>{link}</p>" +
			"<p>Der Link ist {hours} Stunden gültig.</p>" +
			"<p>Wenn Sie kein Konto erstellt haben, ignorieren Sie diese E-Mail.</p>",

		PasswordResetSubject: "Passwort zurücksetzen",
		PasswordResetText: "Hallo {name},\n\n" +
			"Wir haben eine Anfrage zum Zurücksetzen Ihres Passworts erhalten. Erstellen Sie unter diesem Link ein neues Passwort:\n{link}\n\n" +
			"Der Link ist {hours} Stunde(n) gültig.\n\n" +
			"Wenn Sie dies nicht angefordert haben, ignorieren Sie diese E-Mail.",
		PasswordResetHTML: "<p>Hallo {name},</p>" +
			"<p>Wir haben eine Anfrage zum Zurücksetzen Ihres Passworts erhalten. Klicken Sie auf den Link, um ein neues Passwort zu erstellen:</p>" +
			"<p><a href=\"{link}\">Passwort zurücksetzen</a></p>" +
			"<p>Oder kopieren Sie diesen Link in Ihren Browser:</p>" +
			"<p>{link}</p>" +
			"<p>Der Link ist {hours} Stunde(n) gültig.</p>" +
			"<p>Wenn Sie dies nicht angefordert haben, ignorieren Sie diese E-Mail.</p>",

		FallbackName: "",
	},
}

func emailStringsForLocale(locale string) emailStrings {
	key := NormalizeLocale(locale)
	if val, ok := emailTranslations[key]; ok {
		return val
	}
	return emailTranslations[DefaultLocale]
}

func renderTemplate(tmpl string, values map[string]string) string {
	if tmpl == "" || len(values) == 0 {
		return tmpl
	}

	replacements := make([]string, 0, len(values)*2)
	for key, value := range values {
		replacements = append(replacements, "{"+key+"}", value)
	}
	return strings.NewReplacer(replacements...).Replace(tmpl)
}

func VerificationEmail(locale, name, link string, hours int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"name":  nameOrFallback(name, templates),
		"link":  link,
		"hours": strconv.Itoa(hours),
	}
	return EmailContent{
		Subject: templates.VerificationSubject,
		Text:    renderTemplate(templates.VerificationText, values),
		HTML:    renderTemplate(templates.VerificationHTML, values),
	}
}

func PasswordResetEmail(locale, name, link string, hours int) EmailContent {
	templates := emailStringsForLocale(locale)
	values := map[string]string{
		"name":  nameOrFallback(name, templates),
		"link":  link,
		"hours": strconv.Itoa(hours),
	}
	return EmailContent{
		Subject: templates.PasswordResetSubject,
		Text:    renderTemplate(templates.PasswordResetText, values),
		HTML:    renderTemplate(templates.PasswordResetHTML, values),
	}
}

func nameOrFallback(name string, templates emailStrings) string {
	if strings.TrimSpace(name) != "" {
		return name
	}
	if templates.FallbackName != "" {
		return templates.FallbackName
	}
	// German has no casual equivalent of "there"; fall back to the English one.
	return emailTranslations[DefaultLocale].FallbackName
}
