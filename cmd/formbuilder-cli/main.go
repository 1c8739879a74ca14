// Command formbuilder-cli is an interactive form builder. It drives a
// session from terminal prompts: add and edit forms and elements, navigate
// nested groups, and print the derived schemas at any point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	json "github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/formtree"
	"github.com/goliatone/go-formbuilder/pkg/openapi"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/html"
	"github.com/goliatone/go-formbuilder/pkg/session"
)

func main() {
	output := flag.String("output", "", "write rendered HTML to this file on quit")
	flag.Parse()

	renderer, err := html.New()
	if err != nil {
		log.Fatalf("configure renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	s := session.New(
		session.WithRegistry(registry),
		session.WithRenderer("html"),
	)

	if err := run(context.Background(), s); err != nil {
		log.Fatalf("builder: %v", err)
	}

	if *output != "" {
		out, err := s.Render(context.Background())
		if err != nil {
			log.Fatalf("render: %v", err)
		}
		if err := os.WriteFile(*output, out, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	}
}

func run(ctx context.Context, s *session.Session) error {
	for {
		choice, err := pick("Action", actions(s))
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}

		switch choice {
		case actAddForm:
			err = addForm(s)
		case actAddElement:
			err = addElement(s)
		case actEditForm:
			err = editForm(s)
		case actDeleteForm:
			err = deleteForm(s)
		case actEnter:
			err = enterForm(s)
		case actBack:
			s.Back()
		case actJump:
			err = jumpTo(s)
		case actSchema:
			err = show(s.SchemaJSON)
		case actLayout:
			err = show(s.LayoutJSON)
		case actSchemaYAML:
			err = show(s.SchemaYAML)
		case actOpenAPI:
			err = showOpenAPI(s)
		case actQuit:
			return nil
		}
		if err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				return nil
			}
			return err
		}
	}
}

const (
	actAddForm    = "Add form"
	actAddElement = "Add element"
	actEditForm   = "Rename form"
	actDeleteForm = "Delete form"
	actEnter      = "Open nested form"
	actBack       = "Back"
	actJump       = "Jump to breadcrumb"
	actSchema     = "Show JSON schema"
	actLayout     = "Show UI schema"
	actSchemaYAML = "Show schema as YAML"
	actOpenAPI    = "Export OpenAPI"
	actQuit       = "Quit"
)

// actions builds the menu for the current position: form-level entries only
// appear when there is a form to act on, Back only below the root.
func actions(s *session.Session) []string {
	out := []string{actAddForm}
	if len(s.CurrentForms()) > 0 {
		out = append(out, actAddElement, actEditForm, actDeleteForm, actEnter)
	}
	if crumbs := s.Breadcrumbs(); len(crumbs) > 0 {
		out = append(out, actBack, actJump)
	}
	return append(out, actSchema, actLayout, actSchemaYAML, actOpenAPI, actQuit)
}

func addForm(s *session.Session) error {
	kinds := []string{
		string(formtree.FormSimple),
		string(formtree.FormArray),
		string(formtree.FormGroup),
	}
	kind, err := pick("Form kind", kinds)
	if err != nil {
		return err
	}
	form := s.AddForm(formtree.FormKind(kind))
	if form == nil {
		return nil
	}
	fmt.Printf("Added %q (%s)\n", form.Label, form.Key)
	return nil
}

func addElement(s *session.Session) error {
	form, err := pickForm(s, "Add element to")
	if err != nil || form == nil {
		return err
	}
	types := []string{
		string(formtree.ValueString),
		string(formtree.ValueNumber),
		string(formtree.ValueBoolean),
		string(formtree.ValueDate),
		string(formtree.ValueObject),
		string(formtree.ValueArray),
	}
	valueType, err := pick("Value type", types)
	if err != nil {
		return err
	}
	element := s.AddElement(form, formtree.ValueType(valueType))
	if element == nil {
		return nil
	}

	label, err := ask("Label", element.Label)
	if err != nil {
		return err
	}
	required := false
	if formtree.ValueType(valueType) != formtree.ValueObject {
		if required, err = confirm("Required?"); err != nil {
			return err
		}
	}
	s.UpdateElement(form, &formtree.ElementNode{
		ValueType: element.ValueType,
		Label:     label,
		Key:       element.Key,
		Required:  required,
	})
	return nil
}

func editForm(s *session.Session) error {
	form, err := pickForm(s, "Rename")
	if err != nil || form == nil {
		return err
	}
	label, err := ask("New label", form.Label)
	if err != nil {
		return err
	}
	s.UpdateForm(&formtree.FormNode{
		Kind:        form.Kind,
		Label:       label,
		Key:         form.Key,
		Orientation: form.Orientation,
	})
	return nil
}

func deleteForm(s *session.Session) error {
	form, err := pickForm(s, "Delete")
	if err != nil || form == nil {
		return err
	}
	ok, err := confirm(fmt.Sprintf("Delete %q and everything under it?", form.Label))
	if err != nil || !ok {
		return err
	}
	s.DeleteForm(form.Key)
	return nil
}

func enterForm(s *session.Session) error {
	form, err := pickForm(s, "Open")
	if err != nil || form == nil {
		return err
	}
	s.Enter(form)
	return nil
}

func jumpTo(s *session.Session) error {
	crumbs := s.Breadcrumbs()
	labels := make([]string, 0, len(crumbs)+1)
	labels = append(labels, "(root)")
	for _, crumb := range crumbs {
		labels = append(labels, crumb.Label)
	}
	choice, err := pick("Jump to", labels)
	if err != nil {
		return err
	}
	for i, label := range labels {
		if label == choice {
			s.JumpTo(i - 1)
			return nil
		}
	}
	return nil
}

func show(preview func() (string, error)) error {
	out, err := preview()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func showOpenAPI(s *session.Session) error {
	doc, err := openapi.Export(s.Schema())
	if err != nil {
		return err
	}
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode openapi document: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}

func pickForm(s *session.Session, message string) (*formtree.FormNode, error) {
	forms := s.CurrentForms()
	if len(forms) == 0 {
		return nil, nil
	}
	labels := make([]string, 0, len(forms))
	for _, form := range forms {
		labels = append(labels, fmt.Sprintf("%s (%s)", form.Label, form.Kind))
	}
	choice, err := pick(message, labels)
	if err != nil {
		return nil, err
	}
	for i, label := range labels {
		if label == choice {
			return forms[i], nil
		}
	}
	return nil, nil
}

func pick(message string, options []string) (string, error) {
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out); err != nil {
		return "", err
	}
	return out, nil
}

func ask(message, def string) (string, error) {
	var out string
	prompt := &survey.Input{Message: message, Default: def}
	err := survey.AskOne(prompt, &out, survey.WithValidator(func(ans interface{}) error {
		value, _ := ans.(string)
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("a label is required")
		}
		return nil
	}))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func confirm(message string) (bool, error) {
	var out bool
	prompt := &survey.Confirm{Message: message}
	if err := survey.AskOne(prompt, &out); err != nil {
		return false, err
	}
	return out, nil
}
