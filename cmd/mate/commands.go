package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mate-social/internal/application/dispenser"
	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// newFlags FlagSet que devuelve el error en vez de salir, para que run decida.
func newFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	return nil
}

// ─── Sesión ──────────────────────────────────────────────────────────────────

func (a *app) login(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlags("login")
	username := fs.String("u", "", "usuario")
	password := fs.String("p", "", "contraseña")
	if err := parse(fs, args); err != nil {
		return err
	}
	state, err := a.auth.Login(ctx, dto.LoginRequest{Username: *username, Password: *password})
	if err != nil {
		return err
	}
	if state.Profile == nil {
		fmt.Fprintf(out, "Sesión iniciada (perfil no disponible: %s)\n", message(state.ProfileErr))
		return nil
	}
	fmt.Fprintf(out, "Sesión iniciada como %s (%s)\n", state.Profile.DisplayName(), roleLabel(state.Capabilities()))
	return nil
}

func (a *app) logout(ctx context.Context, out io.Writer) error {
	a.dispensers.Close()
	a.suggestions.Close()
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "Sesión cerrada")
	return nil
}

func (a *app) whoami(out io.Writer) error {
	s := a.sess.Snapshot()
	if !s.Authenticated() {
		return domain.ErrNoSession
	}
	if s.Profile == nil {
		if s.ProfileErr != nil {
			return s.ProfileErr
		}
		fmt.Fprintln(out, "Sesión activa, sin perfil")
		return nil
	}
	p := s.Profile
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Usuario\t%s\n", p.Username)
	fmt.Fprintf(w, "Nombre\t%s\n", p.DisplayName())
	fmt.Fprintf(w, "Email\t%s\n", p.Email)
	fmt.Fprintf(w, "Rol\t%s\n", roleLabel(s.Capabilities()))
	return w.Flush()
}

func (a *app) register(ctx context.Context, args []string, out io.Writer) error {
	in, err := accountFlags("register", args)
	if err != nil {
		return err
	}
	if err := a.auth.Register(ctx, in); err != nil {
		return err
	}
	fmt.Fprintln(out, "Registro exitoso. Ahora puedes iniciar sesión.")
	return nil
}

func (a *app) createEmployee(ctx context.Context, args []string, out io.Writer) error {
	in, err := accountFlags("create-employee", args)
	if err != nil {
		return err
	}
	if err := a.auth.CreateAdminEmployee(ctx, in); err != nil {
		return err
	}
	fmt.Fprintf(out, "Administrador empleado %q creado\n", strings.TrimSpace(in.Username))
	return nil
}

func accountFlags(name string, args []string) (dto.RegisterRequest, error) {
	fs := newFlags(name)
	var in dto.RegisterRequest
	fs.StringVar(&in.Username, "u", "", "usuario")
	fs.StringVar(&in.Email, "email", "", "email")
	fs.StringVar(&in.Password, "p", "", "contraseña")
	fs.StringVar(&in.ConfirmPassword, "confirm", "", "confirmación")
	if err := parse(fs, args); err != nil {
		return dto.RegisterRequest{}, err
	}
	return in, nil
}

// ─── Dispensers ──────────────────────────────────────────────────────────────

func (a *app) dispensersCmd(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "list":
		return a.listDispensers(ctx, out)
	case "create":
		return a.saveDispenser(ctx, args[1:], false, out)
	case "update":
		return a.saveDispenser(ctx, args[1:], true, out)
	case "delete":
		fs := newFlags("delete")
		id := fs.Int64("id", 0, "codigo_dispenser")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		if err := a.dispensers.Remove(ctx, *id); err != nil {
			return err
		}
		fmt.Fprintf(out, "Dispenser %d eliminado (%d restantes)\n", *id, len(a.dispensers.Markers()))
		return nil
	}
	return errUsage
}

func (a *app) listDispensers(ctx context.Context, out io.Writer) error {
	items, err := a.dispensers.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(out, "No hay dispensers registrados")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tACTIVO\tPERMANENTE\tUBICACIÓN")
	for _, d := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", d.ID, d.Name, yesNo(d.Active), yesNo(d.Permanent), d.Location.Coordinate)
	}
	return w.Flush()
}

// saveDispenser alta o edición. En edición los flags omitidos conservan el valor actual.
func (a *app) saveDispenser(ctx context.Context, args []string, editing bool, out io.Writer) error {
	fs := newFlags("dispensers")
	id := fs.Int64("id", 0, "codigo_dispenser")
	name := fs.String("name", "", "nombre")
	active := fs.Bool("active", false, "activo")
	permanent := fs.Bool("permanent", false, "permanente")
	lat := fs.String("lat", "", "latitud")
	lng := fs.String("lng", "", "longitud")
	photoPath := fs.String("photo", "", "foto (jpg/png)")
	if err := parse(fs, args); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	fields := dispenser.Fields{Name: *name, Active: *active, Permanent: *permanent}
	if editing {
		if *id <= 0 {
			return errUsage
		}
		if _, err := a.dispensers.List(ctx); err != nil {
			return err
		}
		if err := a.dispensers.StartEdit(*id); err != nil {
			return err
		}
		current := a.dispensers.Form().Fields
		if !set["name"] {
			fields.Name = current.Name
		}
		if !set["active"] {
			fields.Active = current.Active
		}
		if !set["permanent"] {
			fields.Permanent = current.Permanent
		}
	}
	a.dispensers.SetFields(fields)

	if set["lat"] || set["lng"] || !editing {
		at, err := parseCoordinate(*lat, *lng)
		if err != nil {
			return err
		}
		a.dispensers.SetCoordinate(at)
	}
	if *photoPath != "" {
		photo, err := readPhoto(*photoPath)
		if err != nil {
			return err
		}
		a.dispensers.AttachPhoto(photo)
	}

	var (
		d   *entity.Dispenser
		err error
	)
	if editing {
		d, err = a.dispensers.Update(ctx, *id)
	} else {
		d, err = a.dispensers.Create(ctx)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Dispenser %d %q guardado en %s\n", d.ID, d.Name, d.Location.Coordinate)
	return nil
}

// ─── Solicitudes ─────────────────────────────────────────────────────────────

func (a *app) request(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlags("request")
	lat := fs.String("lat", "", "latitud")
	lng := fs.String("lng", "", "longitud")
	if err := parse(fs, args); err != nil {
		return err
	}
	at, err := parseCoordinate(*lat, *lng)
	if err != nil {
		return err
	}
	req, err := a.suggestions.RequestPlacement(ctx, at)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Solicitud %d registrada en %s\n", req.ID, req.Location.Coordinate)
	return nil
}

func (a *app) suggestionsCmd(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "list":
		items, err := a.suggestions.ListSuggestions(ctx)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Fprintln(out, "No hay solicitudes pendientes")
			return nil
		}
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "UBICACIÓN\tCOORDENADAS\tSOLICITUDES\tÚLTIMA")
		for _, s := range items {
			last := "-"
			if s.LastRequestedAt != nil {
				last = s.LastRequestedAt.Local().Format("02/01/2006 15:04")
			}
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", s.LocationID, s.Coordinate, s.RequestCount, last)
		}
		return w.Flush()

	case "accept":
		fs := newFlags("accept")
		id := fs.Int64("id", 0, "codigo_ubicacion")
		name := fs.String("name", "", "nombre del dispenser")
		photoPath := fs.String("photo", "", "foto (jpg/png)")
		if err := parse(fs, args[1:]); err != nil {
			return err
		}
		var photo *entity.Photo
		if *photoPath != "" {
			p, err := readPhoto(*photoPath)
			if err != nil {
				return err
			}
			photo = p
		}
		d, err := a.suggestions.AcceptSuggestion(ctx, *id, *name, photo)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Dispenser %d %q creado en la ubicación %d\n", d.ID, d.Name, *id)
		return nil
	}
	return errUsage
}

// ─── Reporte ─────────────────────────────────────────────────────────────────

func (a *app) exportReport(ctx context.Context, args []string, out io.Writer) error {
	fs := newFlags("report")
	path := fs.String("out", fmt.Sprintf("reporte-mate-%s.pdf", time.Now().Format("20060102")), "archivo de salida")
	if err := parse(fs, args); err != nil {
		return err
	}
	pdf, err := a.report.Export(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*path, pdf, 0o644); err != nil {
		return fmt.Errorf("guardar reporte: %w", err)
	}
	fmt.Fprintf(out, "Reporte guardado en %s (%d bytes)\n", *path, len(pdf))
	return nil
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

func parseCoordinate(lat, lng string) (entity.Coordinate, error) {
	la, err := decimal.NewFromString(strings.TrimSpace(lat))
	if err != nil {
		return entity.Coordinate{}, domain.NewValidationError("latitud", "Latitud inválida")
	}
	lo, err := decimal.NewFromString(strings.TrimSpace(lng))
	if err != nil {
		return entity.Coordinate{}, domain.NewValidationError("longitud", "Longitud inválida")
	}
	at := entity.Coordinate{Latitude: la, Longitude: lo}
	if err := at.Validate(); err != nil {
		return entity.Coordinate{}, domain.NewValidationError("ubicacion", err.Error())
	}
	return at, nil
}

func readPhoto(path string) (*entity.Photo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer foto: %w", err)
	}
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	return &entity.Photo{Filename: filepath.Base(path), ContentType: contentType, Data: data}, nil
}

func roleLabel(c entity.Capabilities) string {
	switch {
	case c.IsAdmin:
		return string(entity.RoleAdministrador)
	case c.IsAdminOrEmployee:
		return string(entity.RoleAdministradorEmpleado)
	case c.IsNormalUser:
		return string(entity.RoleUsuarioComun)
	}
	return "sin rol"
}

func yesNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
