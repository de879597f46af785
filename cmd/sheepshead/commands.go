package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/sheepshead/internal/display"
	"github.com/lox/sheepshead/internal/game"
	"github.com/lox/sheepshead/internal/history"
	"github.com/lox/sheepshead/internal/notify"
	"github.com/lox/sheepshead/internal/session"
	"github.com/lox/sheepshead/internal/settlement"
)

// ShowCmd prints the saved game, starting a fresh one when there is none
type ShowCmd struct{}

func (cmd *ShowCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	app.showBoard(sess)
	return nil
}

func (a *App) showBoard(sess *session.Session) {
	a.println(display.Scoreboard(a.styles, sess.Players(), sess.Pot(), sess.DealerID()))
}

func (a *App) settled(sess *session.Session, e history.Entry) error {
	a.println(a.styles.Success.Render(e.Description))
	a.println("")
	a.showBoard(sess)
	return a.Saved()
}

type NewCmd struct {
	Force bool `short:"f" help:"Discard a game that is in progress"`
}

func (cmd *NewCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	if sess.HasProgress() && !cmd.Force {
		return errors.New("a game is in progress; run with --force to discard it")
	}
	sess.Reset()
	app.println(app.styles.Success.Render("New game started"))
	app.println("")
	app.showBoard(sess)
	return app.Saved()
}

type PlayersCmd struct {
	List   PlayersListCmd   `cmd:"" default:"1" help:"List the roster"`
	Add    PlayersAddCmd    `cmd:"" help:"Seat a new player"`
	Rename PlayersRenameCmd `cmd:"" help:"Rename a player"`
	Remove PlayersRemoveCmd `cmd:"" help:"Unseat a player"`
}

type PlayersListCmd struct{}

func (cmd *PlayersListCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	app.showBoard(sess)
	return nil
}

type PlayersAddCmd struct {
	Name string `arg:"" optional:"" help:"Display name (defaults to Player <id>)"`
}

func (cmd *PlayersAddCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	if _, err := sess.AddPlayer(cmd.Name); err != nil {
		return err
	}
	app.showBoard(sess)
	return app.Saved()
}

type PlayersRenameCmd struct {
	Player string `arg:"" help:"Seat id or current name"`
	Name   string `arg:"" help:"New display name"`
}

func (cmd *PlayersRenameCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	p, err := resolvePlayer(sess.Players(), cmd.Player)
	if err != nil {
		return err
	}
	if err := sess.RenamePlayer(p.ID, cmd.Name); err != nil {
		return err
	}
	app.showBoard(sess)
	return app.Saved()
}

type PlayersRemoveCmd struct {
	Player string `arg:"" help:"Seat id or name"`
}

func (cmd *PlayersRemoveCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	p, err := resolvePlayer(sess.Players(), cmd.Player)
	if err != nil {
		return err
	}
	if !p.Balance.IsZero() {
		app.logger.Warn("Removing a player with a balance", "player", p.Name, "balance", p.Balance.StringFixed(2))
	}
	if err := sess.RemovePlayer(p.ID); err != nil {
		return err
	}
	app.showBoard(sess)
	return app.Saved()
}

type DealerCmd struct {
	Player string `arg:"" help:"Seat id or name"`
}

func (cmd *DealerCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	p, err := resolvePlayer(sess.Players(), cmd.Player)
	if err != nil {
		return err
	}
	if err := sess.SetDealer(p.ID); err != nil {
		return err
	}
	app.showBoard(sess)
	return app.Saved()
}

type HandCmd struct {
	Picker  string `short:"p" required:"" help:"Picker seat id or name"`
	Partner string `short:"P" help:"Partner seat id or name; leave out when the picker went alone"`
	Loss    bool   `short:"l" help:"The picker's side lost"`
	Grade   string `short:"g" enum:"standard,no-schneider,schneider,schwarz" default:"standard" help:"How the hand ended (${enum})"`
	Crack   string `short:"c" enum:"none,crack,recrack" default:"none" help:"Stake doubling (${enum})"`
	Pots    int    `default:"1" help:"Pots wagered, oldest first; ignored when there is no pot"`
}

// Outcome converts the flags into a settlement outcome
func (cmd *HandCmd) Outcome(players []game.Player) (settlement.Outcome, error) {
	picker, err := resolvePlayer(players, cmd.Picker)
	if err != nil {
		return settlement.Outcome{}, fmt.Errorf("picker: %w", err)
	}
	o := settlement.Outcome{
		PickerID:    picker.ID,
		Verdict:     settlement.Win,
		WageredPots: cmd.Pots,
	}
	if cmd.Partner != "" {
		partner, err := resolvePlayer(players, cmd.Partner)
		if err != nil {
			return settlement.Outcome{}, fmt.Errorf("partner: %w", err)
		}
		o.PartnerID = partner.ID
	}
	if cmd.Loss {
		o.Verdict = settlement.Loss
	}
	if o.Grade, err = settlement.ParseGrade(cmd.Grade); err != nil {
		return settlement.Outcome{}, err
	}
	if o.Crack, err = settlement.ParseCrack(cmd.Crack); err != nil {
		return settlement.Outcome{}, err
	}
	return o, nil
}

func (cmd *HandCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	o, err := cmd.Outcome(sess.Players())
	if err != nil {
		return err
	}
	e, err := sess.PlayHand(o)
	if err != nil {
		return err
	}
	return app.settled(sess, e)
}

type PassCmd struct{}

func (cmd *PassCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	e, err := sess.Pass()
	if err != nil {
		return err
	}
	return app.settled(sess, e)
}

type KingsCmd struct {
	Player string `arg:"" help:"Seat id or name of the player holding three kings"`
}

func (cmd *KingsCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	p, err := resolvePlayer(sess.Players(), cmd.Player)
	if err != nil {
		return err
	}
	e, err := sess.ThreeKings(p.ID)
	if err != nil {
		return err
	}
	return app.settled(sess, e)
}

type UndoCmd struct{}

func (cmd *UndoCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	e, err := sess.Undo()
	if errors.Is(err, session.ErrNoHistory) {
		app.println(app.styles.Warning.Render("Nothing to undo"))
		return nil
	} else if err != nil {
		return err
	}
	app.println(app.styles.Success.Render("Undid: " + e.Description))
	app.println("")
	app.showBoard(sess)
	return app.Saved()
}

type HistoryCmd struct {
	Limit int `short:"n" default:"10" help:"Entries to show (0 = all)"`
	UTC   bool `help:"Show times in UTC instead of local time"`
}

func (cmd *HistoryCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	loc := time.Local
	if cmd.UTC {
		loc = time.UTC
	}
	app.println(display.History(app.styles, sess.History(), sess.Players(), cmd.Limit, loc))
	return nil
}

type MailCmd struct {
	To string `required:"" help:"Recipient address"`
}

func (cmd *MailCmd) Run(app *App) error {
	sess, err := app.Session()
	if err != nil {
		return err
	}
	subject := notify.Subject(app.clock.Now())
	body := notify.Summary(sess.Players(), sess.Pot())
	link, err := notify.MailtoURL(cmd.To, subject, body)
	if err != nil {
		return err
	}
	app.printf("Subject: %s\n\n%s\n\n", subject, body)
	app.println(link)
	return nil
}

type RulesCmd struct{}

func (cmd *RulesCmd) Run(app *App) error {
	stakes, err := app.cfg.GameStakes()
	if err != nil {
		return err
	}
	engine, err := settlement.NewEngine(stakes)
	if err != nil {
		return err
	}
	app.println(display.Rules(app.styles, stakes, engine.Schedule()))
	return nil
}
