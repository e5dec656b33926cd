// Package catalog loads campaign task definitions. The catalog is immutable once loaded.
package catalog

import (
	"os"
	"regexp"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/locey/BurnWin/verification"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// ids end up in NATS subjects and URL paths
var idPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type Campaign struct {
	ID    string              `json:"id"`
	Name  string              `json:"name"`
	Tasks []verification.Task `json:"tasks"`
}

type Catalog struct {
	campaigns map[string]Campaign
	order     []string
}

type rawFile struct {
	Campaigns []rawCampaign `yaml:"campaigns"`
}

type rawCampaign struct {
	ID    string    `yaml:"id"`
	Name  string    `yaml:"name"`
	Tasks []rawTask `yaml:"tasks"`
}

type rawTask struct {
	ID          string         `yaml:"id"`
	Type        string         `yaml:"type"`
	Label       string         `yaml:"label"`
	Description string         `yaml:"description"`
	Required    bool           `yaml:"required"`
	Reward      string         `yaml:"reward"`
	Data        map[string]any `yaml:"data"`
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed on read catalog")
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var raw rawFile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "failed on decode catalog")
	}

	c := &Catalog{campaigns: make(map[string]Campaign, len(raw.Campaigns))}
	for _, rc := range raw.Campaigns {
		if !idPattern.MatchString(rc.ID) {
			return nil, errors.Wrapf(ErrInvalidCatalog, "campaign id %q", rc.ID)
		}
		if _, dup := c.campaigns[rc.ID]; dup {
			return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate campaign %q", rc.ID)
		}
		camp := Campaign{ID: rc.ID, Name: rc.Name, Tasks: make([]verification.Task, 0, len(rc.Tasks))}
		seen := make(map[string]struct{}, len(rc.Tasks))
		for _, rt := range rc.Tasks {
			t, err := buildTask(rc.ID, rt)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[t.ID]; dup {
				return nil, errors.Wrapf(ErrInvalidCatalog, "duplicate task %s/%s", rc.ID, t.ID)
			}
			seen[t.ID] = struct{}{}
			camp.Tasks = append(camp.Tasks, t)
		}
		c.campaigns[rc.ID] = camp
		c.order = append(c.order, rc.ID)
	}
	return c, nil
}

func buildTask(campaignID string, rt rawTask) (verification.Task, error) {
	if !idPattern.MatchString(rt.ID) {
		return verification.Task{}, errors.Wrapf(ErrInvalidCatalog, "task id %q in campaign %s", rt.ID, campaignID)
	}
	reward := decimal.Zero
	if rt.Reward != "" {
		r, err := decimal.NewFromString(rt.Reward)
		if err != nil {
			return verification.Task{}, errors.Wrapf(ErrInvalidCatalog, "task %s/%s reward %q", campaignID, rt.ID, rt.Reward)
		}
		reward = r
	}
	typ := verification.TaskType(rt.Type)
	p, err := verification.DecodeParams(typ, rt.Data)
	if err != nil {
		return verification.Task{}, errors.Wrapf(err, "task %s/%s", campaignID, rt.ID)
	}
	return verification.Task{
		ID:          rt.ID,
		CampaignID:  campaignID,
		Type:        typ,
		Label:       rt.Label,
		Description: rt.Description,
		Required:    rt.Required,
		Reward:      reward,
		Params:      p,
	}, nil
}

func (c *Catalog) Campaign(id string) (Campaign, bool) {
	camp, ok := c.campaigns[id]
	return camp, ok
}

// Campaigns returns campaigns in file order.
func (c *Catalog) Campaigns() []Campaign {
	out := make([]Campaign, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.campaigns[id])
	}
	return out
}

func (c *Catalog) Tasks(campaignID string) ([]verification.Task, bool) {
	camp, ok := c.campaigns[campaignID]
	if !ok {
		return nil, false
	}
	return camp.Tasks, true
}

func (c *Catalog) Task(campaignID, taskID string) (verification.Task, bool) {
	tasks, ok := c.Tasks(campaignID)
	if !ok {
		return verification.Task{}, false
	}
	for _, t := range tasks {
		if t.ID == taskID {
			return t, true
		}
	}
	return verification.Task{}, false
}
