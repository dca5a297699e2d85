package user

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"workforce/backend/foundation/web"
	"workforce/backend/internal/auth"
	"workforce/backend/internal/entity"
	"workforce/backend/internal/pkg/repository/postgresql"
	"workforce/backend/internal/repository/postgres"
	"workforce/backend/internal/service/report"
)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("lower(email) = lower(?) AND deleted_at IS NULL", email).
		Scan(ctx)
	if err != nil {
		return entity.User{}, &web.Error{
			Err:    errors.New("invalid credentials"),
			Status: http.StatusUnauthorized,
		}
	}

	return detail, nil
}

func (r Repository) GetById(ctx context.Context, id int) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).
		Where("id = ? AND deleted_at IS NULL", id).
		Scan(ctx)

	return detail, err
}

// SignUp registers a new account. Members are attached to the least-loaded
// active lead at creation time; when no lead exists the reference stays null.
func (r Repository) SignUp(ctx context.Context, request SignUpRequest) (SignUpResponse, error) {
	if err := r.ValidateStruct(&request, "Username", "Email", "Password"); err != nil {
		return SignUpResponse{}, err
	}

	role := auth.RoleMember
	if request.Role != nil {
		role = strings.ToUpper(*request.Role)
	}
	if role != auth.RoleLead && role != auth.RoleMember {
		return SignUpResponse{}, web.NewRequestError(errors.New("incorrect role. role should be LEAD or MEMBER"), http.StatusBadRequest)
	}

	emailUsed := true
	if err := r.QueryRowContext(ctx,
		`SELECT CASE WHEN
			(SELECT id FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL) IS NOT NULL
			THEN true ELSE false END`, *request.Email).Scan(&emailUsed); err != nil {
		return SignUpResponse{}, web.NewRequestError(errors.Wrap(err, "email check"), http.StatusInternalServerError)
	}
	if emailUsed {
		return SignUpResponse{}, web.NewRequestError(errors.New("email already exists"), http.StatusConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
	if err != nil {
		return SignUpResponse{}, web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	hashedPassword := string(hash)

	var response SignUpResponse
	response.Username = request.Username
	response.Email = request.Email
	response.Password = &hashedPassword
	response.Role = &role
	response.IsActive = true
	response.CreatedAt = time.Now()

	if role == auth.RoleMember {
		leadID, err := r.pickLead(ctx)
		if err != nil {
			return SignUpResponse{}, err
		}
		response.TeamLeadID = leadID
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return SignUpResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusBadRequest)
	}

	response.Password = nil

	return response, nil
}

// pickLead snapshots {lead: member count} over active leads and picks the
// least loaded one. The snapshot is not serialized against concurrent
// signups; two racing members may land on the same lead.
func (r Repository) pickLead(ctx context.Context) (*int, error) {
	rows, err := r.QueryContext(ctx, `
		SELECT
			l.id,
			count(m.id)
		FROM users l
		LEFT JOIN users m ON m.team_lead_id = l.id AND m.deleted_at IS NULL
		WHERE l.role = 'LEAD' AND l.is_active = true AND l.deleted_at IS NULL
		GROUP BY l.id
	`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting leads"), http.StatusInternalServerError)
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var id, n int
		if err = rows.Scan(&id, &n); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning lead counts"), http.StatusInternalServerError)
		}
		counts[id] = n
	}
	if err = rows.Err(); err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "reading lead counts"), http.StatusInternalServerError)
	}

	leadID, ok := report.PickLeastLoadedLead(counts)
	if !ok {
		return nil, nil
	}
	return &leadID, nil
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `
			WHERE
				u.deleted_at IS NULL
			`

	if filter.Search != nil {
		search := strings.Replace(*filter.Search, "'", "''", -1)

		whereQuery += fmt.Sprintf(` AND
		(u.username ilike '%s' OR u.email ilike '%s')`, "%"+search+"%", "%"+search+"%")
	}
	orderQuery := "ORDER BY u.created_at desc"

	var limitQuery, offsetQuery string

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}

	if filter.Limit != nil {
		limitQuery += fmt.Sprintf(" LIMIT %d", *filter.Limit)
	}

	if filter.Offset != nil {
		offsetQuery += fmt.Sprintf(" OFFSET %d", *filter.Offset)
	}

	query := fmt.Sprintf(`
		SELECT
			u.id,
			u.username,
			u.email,
			u.role,
			u.is_active,
			u.team_lead_id,
			l.username
		FROM users u
		LEFT JOIN users l ON l.id = u.team_lead_id

		%s %s %s %s
	`, whereQuery, orderQuery, limitQuery, offsetQuery)

	rows, err := r.QueryContext(ctx, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse

	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Username,
			&detail.Email,
			&detail.Role,
			&detail.IsActive,
			&detail.TeamLeadID,
			&detail.TeamLeadName); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}

		list = append(list, detail)
	}

	countQuery := fmt.Sprintf(`
		SELECT
			count(u.id)
		FROM  users u
			%s
	`, whereQuery)

	count := 0
	if err = r.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user count"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := `
		SELECT
			u.id,
			u.username,
			u.email,
			u.role,
			u.is_active,
			u.team_lead_id,
			l.username
		FROM users u
		LEFT JOIN users l ON l.id = u.team_lead_id
		WHERE u.deleted_at IS NULL AND u.id = $1
	`

	var detail GetDetailByIdResponse

	err = r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Username,
		&detail.Email,
		&detail.Role,
		&detail.IsActive,
		&detail.TeamLeadID,
		&detail.TeamLeadName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	q := r.NewUpdate().Table("users").Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Username != nil {
		q.Set("username = ?", request.Username)
	}

	if request.Email != nil {
		emailUsed := true
		if err := r.QueryRowContext(ctx,
			`SELECT CASE WHEN
				(SELECT id FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL AND id != $2) IS NOT NULL
				THEN true ELSE false END`, *request.Email, request.ID).Scan(&emailUsed); err != nil {
			return web.NewRequestError(errors.Wrap(err, "email check"), http.StatusInternalServerError)
		}
		if emailUsed {
			return web.NewRequestError(errors.New("email already exists"), http.StatusConflict)
		}
		q.Set("email = ?", request.Email)
	}

	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), bcrypt.DefaultCost)
		if err != nil {
			return web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
		}
		q.Set("password = ?", string(hash))
	}

	if request.Role != nil {
		role := strings.ToUpper(*request.Role)
		if role != auth.RoleAdmin && role != auth.RoleLead && role != auth.RoleMember {
			return web.NewRequestError(errors.New("incorrect role. role should be ADMIN, LEAD or MEMBER"), http.StatusBadRequest)
		}
		q.Set("role = ?", role)
	}

	if request.IsActive != nil {
		q.Set("is_active = ?", request.IsActive)
	}

	if request.TeamLeadID != nil {
		// Reassignment target must be an active lead.
		var ok bool
		if err := r.QueryRowContext(ctx,
			`SELECT CASE WHEN
				(SELECT id FROM users WHERE id = $1 AND role = 'LEAD' AND is_active = true AND deleted_at IS NULL) IS NOT NULL
				THEN true ELSE false END`, *request.TeamLeadID).Scan(&ok); err != nil {
			return web.NewRequestError(errors.Wrap(err, "lead check"), http.StatusInternalServerError)
		}
		if !ok {
			return web.NewRequestError(errors.New("team_lead_id must reference an active LEAD"), http.StatusBadRequest)
		}
		q.Set("team_lead_id = ?", request.TeamLeadID)
	}

	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	_, err = q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusBadRequest)
	}

	return nil
}

// Delete soft-deletes the account and flips it inactive so historical
// reports keep the row while live rollups drop it.
func (r Repository) Delete(ctx context.Context, id int) error {
	if _, err := r.CheckClaims(ctx, auth.RoleAdmin); err != nil {
		return err
	}

	if err := r.DeleteRow(ctx, "users", id); err != nil {
		return err
	}

	_, err := r.NewUpdate().Table("users").Where("id = ?", id).Set("is_active = false").Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "deactivating user"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) GetBadgeList(ctx context.Context) ([]BadgeRow, error) {
	_, err := r.CheckClaims(ctx, auth.RoleAdmin)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, `
		SELECT id, username, email
		FROM users
		WHERE deleted_at IS NULL AND is_active = true
		ORDER BY username asc
	`)
	if err != nil {
		return nil, web.NewRequestError(errors.Wrap(err, "selecting badge list"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []BadgeRow
	for rows.Next() {
		var row BadgeRow
		if err = rows.Scan(&row.ID, &row.Username, &row.Email); err != nil {
			return nil, web.NewRequestError(errors.Wrap(err, "scanning badge row"), http.StatusInternalServerError)
		}
		list = append(list, row)
	}

	return list, rows.Err()
}
