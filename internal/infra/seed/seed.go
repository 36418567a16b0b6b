package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/agency-site/internal/entity"
	"gopkg.in/yaml.v3"
)

// File é o formato do content.yaml.
type File struct {
	Services []ServiceSeed `yaml:"services"`
	Team     []MemberSeed  `yaml:"team"`
	Content  []BlockSeed   `yaml:"content"`
}

type ServiceSeed struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Category    string   `yaml:"category"`
	Price       string   `yaml:"price"`
	Featured    bool     `yaml:"featured"`
	Points      []string `yaml:"points"`
	SubServices []string `yaml:"sub_services"`
}

type MemberSeed struct {
	Name        string `yaml:"name"`
	Role        string `yaml:"role"`
	Bio         string `yaml:"bio"`
	ImageURL    string `yaml:"image_url"`
	LinkedinURL string `yaml:"linkedin_url"`
	Position    int    `yaml:"position"`
}

type BlockSeed struct {
	Section  string `yaml:"section"`
	Key      string `yaml:"key"`
	Title    string `yaml:"title"`
	Body     string `yaml:"body"`
	ImageURL string `yaml:"image_url"`
	Author   string `yaml:"author"`
	Position int    `yaml:"position"`
}

type ServiceStore interface {
	FindByTitle(ctx context.Context, title string) (*entity.Service, error)
	Create(ctx context.Context, s *entity.Service) error
}

type TeamStore interface {
	FindByName(ctx context.Context, name string) (*entity.TeamMember, error)
	Create(ctx context.Context, m *entity.TeamMember) error
}

type ContentStore interface {
	FindBySectionKey(ctx context.Context, section, key string) (*entity.ContentBlock, error)
	Create(ctx context.Context, b *entity.ContentBlock) error
}

// Result conta o que foi criado e o que já existia.
type Result struct {
	Created int
	Skipped int
}

type Seeder struct {
	Services ServiceStore
	Team     TeamStore
	Content  ContentStore
	Logger   logrus.FieldLogger
}

func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir seed: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

func Parse(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("erro ao ler seed YAML: %w", err)
	}
	return &file, nil
}

// Apply grava o que ainda não existe. Rodar duas vezes não duplica nada:
// serviços são identificados pelo título, membros pelo nome e blocos por
// seção + chave.
func (s *Seeder) Apply(ctx context.Context, file *File) (Result, error) {
	var res Result

	for _, in := range file.Services {
		_, findErr := s.Services.FindByTitle(ctx, in.Title)
		created, err := s.createIfMissing(findErr, "service "+in.Title, func() error {
			svc, err := entity.NewService(in.Title, in.Description, in.Icon, in.Category, in.Price, in.Featured, in.Points, in.SubServices)
			if err != nil {
				return err
			}
			return s.Services.Create(ctx, svc)
		})
		if err != nil {
			return res, err
		}
		res.add(created)
	}

	for _, in := range file.Team {
		_, findErr := s.Team.FindByName(ctx, in.Name)
		created, err := s.createIfMissing(findErr, "team member "+in.Name, func() error {
			m, err := entity.NewTeamMember(in.Name, in.Role, in.Bio, in.ImageURL, in.LinkedinURL, in.Position)
			if err != nil {
				return err
			}
			return s.Team.Create(ctx, m)
		})
		if err != nil {
			return res, err
		}
		res.add(created)
	}

	for _, in := range file.Content {
		section := strings.ToLower(strings.TrimSpace(in.Section))
		_, findErr := s.Content.FindBySectionKey(ctx, section, strings.TrimSpace(in.Key))
		created, err := s.createIfMissing(findErr, "content "+in.Section+"/"+in.Key, func() error {
			b, err := entity.NewContentBlock(in.Section, in.Key, in.Title, in.Body, in.ImageURL, in.Author, in.Position)
			if err != nil {
				return err
			}
			return s.Content.Create(ctx, b)
		})
		if err != nil {
			return res, err
		}
		res.add(created)
	}

	s.logger().WithFields(logrus.Fields{"created": res.Created, "skipped": res.Skipped}).Info("🌱 seed aplicado")
	return res, nil
}

func (s *Seeder) createIfMissing(findErr error, what string, create func() error) (bool, error) {
	switch {
	case findErr == nil:
		return false, nil
	case !errors.Is(findErr, entity.ErrNotFound):
		return false, fmt.Errorf("erro ao buscar %s: %w", what, findErr)
	}

	if err := create(); err != nil {
		if errors.Is(err, entity.ErrDuplicate) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao criar %s: %w", what, err)
	}
	return true, nil
}

func (s *Seeder) logger() logrus.FieldLogger {
	if s.Logger == nil {
		return logrus.StandardLogger()
	}
	return s.Logger
}

func (r *Result) add(created bool) {
	if created {
		r.Created++
	} else {
		r.Skipped++
	}
}
