package forms

import "sort"

// StatesOfOrigin is the fixed option list for the registration form.
var StatesOfOrigin = func() []string {
	s := []string{
		"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
		"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "Gombe", "Imo",
		"Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
		"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers",
		"Sokoto", "Taraba", "Yobe", "Zamfara", "FCT",
	}
	sort.Strings(s)
	return s
}()

var (
	firstName = Spec{Name: "firstName", Label: "First Name", Kind: KindText, Valid: MinTrimmed(2),
		Message: "First name must be at least 2 characters."}
	lastName = Spec{Name: "lastName", Label: "Last Name", Kind: KindText, Valid: MinTrimmed(2),
		Message: "Last name must be at least 2 characters."}
	email = Spec{Name: "email", Label: "Email Address", Kind: KindEmail, Valid: Email,
		Message: "Please enter a valid email address."}
	phone = Spec{Name: "phone", Label: "Phone Number", Kind: KindPhone, Valid: Phone,
		Message: "Phone number must be at least 10 digits."}
	password = Spec{Name: "password", Label: "Password", Kind: KindPassword, Valid: MinLength(6),
		Message: "Password must be at least 6 characters."}
	confirm = Spec{Name: "confirm", Label: "Confirm Password", Kind: KindPassword, Valid: Matches("password"),
		Message: "Passwords do not match."}
)

func Login() *Form {
	return New("login", "Login Successful!",
		firstName, lastName, email, phone, password, confirm)
}

func Register() *Form {
	dob := Spec{Name: "dateOfBirth", Label: "Date of Birth", Kind: KindDate, Valid: Date("2006-01-02"),
		Message: "Please enter a valid date of birth."}
	state := Spec{Name: "stateOfOrigin", Label: "State of Origin", Kind: KindSelect, Valid: OneOf(StatesOfOrigin),
		Message: "Please select your State of Origin.", Options: StatesOfOrigin}
	return New("register", "Registration Successful! You can now log in.",
		firstName, lastName, email, phone, dob, state, password, confirm)
}

func Contact() *Form {
	return New("contact", "Thank you for your message! We will get back to you soon.",
		Spec{Name: "name", Label: "Your Name", Kind: KindText, Valid: MinTrimmed(2),
			Message: "Please enter at least 2 characters."},
		Spec{Name: "email", Label: "Your Email", Kind: KindEmail, Valid: Email,
			Message: "Please enter a valid email address."},
		Spec{Name: "subject", Label: "Subject (Optional)", Kind: KindText},
		Spec{Name: "message", Label: "Your Message", Kind: KindTextarea, Valid: MinTrimmed(10),
			Message: "Message must be at least 10 characters."},
	)
}

var catalog = map[string]func() *Form{
	"login":    Login,
	"register": Register,
	"contact":  Contact,
}

// Names lists the catalog keys in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Lookup returns a fresh instance of the named form.
func Lookup(name string) (*Form, bool) {
	mk, ok := catalog[name]
	if !ok {
		return nil, false
	}
	return mk(), true
}
