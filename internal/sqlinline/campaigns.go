package sqlinline

const QInsertCampaign = `--sql 4f1d0c8a-73b2-4e61-9a0f-2d5c8b14e7a3
insert into campaigns(id, slug, title, currency, goal, donor_gated, is_drive, created_at)
values (gen_random_uuid(), $1::text, $2::text, $3::text, $4::numeric, $5::boolean, $6::boolean, now())
returning id, created_at;
`

const QSelectCampaignBySlug = `--sql 8e2a917b-5c44-4d0e-b6f1-03a9d7c25e18
select id, slug, title, currency, goal, donor_gated, is_drive, created_at
from campaigns
where slug = $1::text;
`

const QSelectCampaignByID = `--sql c6b38f04-91da-4a27-8c55-6e10f4a2d9b7
select id, slug, title, currency, goal, donor_gated, is_drive, created_at
from campaigns
where id = $1::uuid;
`
